package main

import (
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/smilesnaps/smile-rater/internal/ai"
)

// Phone formats that neither the sniffer nor Go's builtin mime table know.
var extraImageTypes = map[string]string{
	".heic": "image/heic",
	".heif": "image/heif",
	".avif": "image/avif",
}

func newRateCmd() *cobra.Command {
	var mimeOverride string

	cmd := &cobra.Command{
		Use:   "rate <image-file>",
		Short: "Rate one image file and print the result as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read image: %w", err)
			}

			_, log, svc, err := bootstrap(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			img := ai.Image{MIMEType: imageMIME(args[0], data, mimeOverride), Data: data}
			res := svc.RateSmile(cmd.Context(), img.DataURI())

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(res)
		},
	}
	cmd.Flags().StringVar(&mimeOverride, "mime", "", "media type of the file, e.g. image/heic (default: guessed)")

	return cmd
}

// imageMIME picks the media type: explicit override, then an image type
// from the file extension, then content sniffing.
func imageMIME(path string, data []byte, override string) string {
	if override != "" {
		return mediaType(override)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if t, ok := extraImageTypes[ext]; ok {
		return t
	}
	if t := mediaType(mime.TypeByExtension(ext)); strings.HasPrefix(t, "image/") {
		return t
	}

	return mediaType(http.DetectContentType(data))
}

// mediaType drops parameters such as "; charset=utf-8".
func mediaType(v string) string {
	if mt, _, err := mime.ParseMediaType(v); err == nil {
		return mt
	}
	return strings.TrimSpace(v)
}
