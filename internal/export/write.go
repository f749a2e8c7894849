package export

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	ferrors "git.home.luguber.info/inful/sitenav/internal/foundation/errors"
	"git.home.luguber.info/inful/sitenav/internal/logfields"
	"git.home.luguber.info/inful/sitenav/internal/site"
)

// Target file names relative to the output directory.
const (
	VitePressFile  = ".vitepress/config.mjs"
	HugoFile       = "hugo.yaml"
	HugoHeadFile   = "layouts/partials/custom/head-end.html"
	HugoFooterFile = "layouts/partials/custom/footer.html"
	YAMLFile       = "sitenav.yaml"
)

// To writes cfg in format to w. Hugo head tags and the footer message are not
// part of hugo.yaml; use Write to get their partials as well.
func To(w io.Writer, format Format, cfg *site.Config) error {
	switch format {
	case FormatVitePress:
		return VitePress(w, cfg)
	case FormatHugo:
		return Hugo(w, cfg)
	case FormatYAML:
		return YAML(w, cfg)
	default:
		return ferrors.ValidationError("unsupported export format").
			WithField("format").WithContext("format", string(format)).Build()
	}
}

// Write renders cfg into dir in the layout the generator expects and returns
// the written paths.
func Write(dir string, format Format, cfg *site.Config) ([]string, error) {
	files := map[string]func(io.Writer) error{}
	var order []string
	add := func(name string, fn func(io.Writer) error) {
		files[name] = fn
		order = append(order, name)
	}

	switch format {
	case FormatVitePress:
		add(VitePressFile, func(w io.Writer) error { return VitePress(w, cfg) })
	case FormatHugo:
		add(HugoFile, func(w io.Writer) error { return Hugo(w, cfg) })
		if len(cfg.Head) > 0 {
			add(HugoHeadFile, func(w io.Writer) error { return hugoHead(w, cfg) })
		}
		if f := cfg.ThemeConfig.Footer; f != nil && f.Message != "" {
			add(HugoFooterFile, func(w io.Writer) error { return hugoFooter(w, f) })
		}
	case FormatYAML:
		add(YAMLFile, func(w io.Writer) error { return YAML(w, cfg) })
	default:
		return nil, To(io.Discard, format, cfg)
	}

	written := make([]string, 0, len(order))
	for _, name := range order {
		var buf bytes.Buffer
		if err := files[name](&buf); err != nil {
			return written, err
		}
		p := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			return written, ferrors.FileSystemError("failed to create output directory").
				WithPath(filepath.Dir(p)).WithCause(err).Build()
		}
		if err := os.WriteFile(p, buf.Bytes(), 0o644); err != nil {
			return written, ferrors.FileSystemError("failed to write export").WithPath(p).WithCause(err).Build()
		}
		slog.Info("Exported site configuration", logfields.Format(string(format)), logfields.Path(p))
		written = append(written, p)
	}
	return written, nil
}

func hugoHead(w io.Writer, cfg *site.Config) error {
	html, err := site.RenderHead(cfg.Head)
	if err != nil {
		return ferrors.ExportError("failed to render head tags").WithCause(err).Build()
	}
	if _, err := io.WriteString(w, html); err != nil {
		return ferrors.ExportError("failed to write head tags").WithCause(err).Build()
	}
	return nil
}

func hugoFooter(w io.Writer, f *site.Footer) error {
	if _, err := io.WriteString(w, sanitizeHTML(f.Message)+"\n"); err != nil {
		return ferrors.ExportError("failed to write footer partial").WithCause(err).Build()
	}
	return nil
}
