// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// ServerConfig holds settings for the HTTP service.
type ServerConfig struct {
	// Host is the interface to bind (default "0.0.0.0").
	Host string `json:"host" yaml:"host" mapstructure:"host"`

	// Port is the listen port (default 10000). The PORT environment
	// variable overrides it.
	Port int `json:"port" yaml:"port" mapstructure:"port"`

	// MaxUploadBytes bounds the size of one multipart request body
	// (default 32 MiB).
	MaxUploadBytes int64 `json:"max_upload_bytes" yaml:"max_upload_bytes" mapstructure:"max_upload_bytes"`

	// ShutdownGrace is how long in-flight requests get on shutdown (default 5s).
	ShutdownGrace time.Duration `json:"shutdown_grace" yaml:"shutdown_grace" mapstructure:"shutdown_grace"`
}

// Layout selects the column layout written into order-form templates.
type Layout string

const (
	// LayoutRecipient is the 7-column recipient-centric layout.
	LayoutRecipient Layout = "recipient"
	// LayoutOrder is the 14-column order-centric layout with constant
	// box count and volume columns.
	LayoutOrder Layout = "order"
)

// Valid reports whether l names a known layout.
func (l Layout) Valid() bool {
	return l == LayoutRecipient || l == LayoutOrder
}

// Category describes one output order form: which delivery rows it takes
// and which uploaded template it is written into.
type Category struct {
	// Name identifies the category in logs and CLI flags (e.g. "common").
	Name string `json:"name" yaml:"name" mapstructure:"name"`

	// Label prefixes the archive entry name (e.g. "공통발주서").
	Label string `json:"label" yaml:"label" mapstructure:"label"`

	// TemplateField is the multipart field carrying the template workbook.
	TemplateField string `json:"template_field" yaml:"template_field" mapstructure:"template_field"`

	// Keywords select rows whose registered product name contains any of them.
	Keywords []string `json:"keywords" yaml:"keywords" mapstructure:"keywords"`
}

// ConversionConfig holds settings for the delivery-list conversion.
type ConversionConfig struct {
	// Layout selects the output column layout (default recipient).
	Layout Layout `json:"layout" yaml:"layout" mapstructure:"layout"`

	// RejectEmpty turns a conversion where no row matches any category
	// into an error instead of an empty archive.
	RejectEmpty bool `json:"reject_empty" yaml:"reject_empty" mapstructure:"reject_empty"`

	// ArchiveName is the download filename of the zip (default "발주서_모음.zip").
	ArchiveName string `json:"archive_name" yaml:"archive_name" mapstructure:"archive_name"`

	// Categories are processed in order; each yields at most one workbook.
	Categories []Category `json:"categories" yaml:"categories" mapstructure:"categories"`
}

// Config groups all settings.
type Config struct {
	Server     ServerConfig     `json:"server" yaml:"server" mapstructure:"server"`
	Conversion ConversionConfig `json:"conversion" yaml:"conversion" mapstructure:"conversion"`
}

// DefaultCategories returns the common and regional (Uiseong) categories.
func DefaultCategories() []Category {
	return []Category{
		{
			Name:          "common",
			Label:         "공통발주서",
			TemplateField: "common_template",
			Keywords:      []string{"천도복숭아", "신비복숭아", "신틸라"},
		},
		{
			Name:          "uiseong",
			Label:         "의성발주서",
			TemplateField: "uiseong_template",
			Keywords:      []string{"의성프리미엄신비복숭아"},
		},
	}
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Host:           "0.0.0.0",
			Port:           10000,
			MaxUploadBytes: 32 << 20,
			ShutdownGrace:  5 * time.Second,
		},
		Conversion: ConversionConfig{
			Layout:      LayoutRecipient,
			ArchiveName: "발주서_모음.zip",
			Categories:  DefaultCategories(),
		},
	}
}
