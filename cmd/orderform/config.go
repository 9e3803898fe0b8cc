// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/orderform/pkg/types"
)

// bindConfig registers defaults and environment bindings on v. Every
// scalar key gets a default so AutomaticEnv applies to it on Unmarshal.
func bindConfig(v *viper.Viper) {
	def := types.DefaultConfig()

	v.SetDefault("server.host", def.Server.Host)
	v.SetDefault("server.port", def.Server.Port)
	v.SetDefault("server.max_upload_bytes", def.Server.MaxUploadBytes)
	v.SetDefault("server.shutdown_grace", def.Server.ShutdownGrace)
	v.SetDefault("conversion.layout", string(def.Conversion.Layout))
	v.SetDefault("conversion.reject_empty", def.Conversion.RejectEmpty)
	v.SetDefault("conversion.archive_name", def.Conversion.ArchiveName)
	v.SetDefault("conversion.categories_file", "")

	v.SetEnvPrefix("ORDERFORM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// PORT is the conventional variable on hosting platforms.
	_ = v.BindEnv("server.port", "ORDERFORM_SERVER_PORT", "PORT")
}

// loadConfig builds the effective configuration from v. Categories come
// from conversion.categories in the config file, then from
// conversion.categories_file, then from the built-in defaults.
func loadConfig(v *viper.Viper) (types.Config, error) {
	cfg := types.DefaultConfig()
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding config: %w", err)
	}

	if path := v.GetString("conversion.categories_file"); path != "" {
		cats, err := loadCategoriesFile(path)
		if err != nil {
			return cfg, err
		}
		cfg.Conversion.Categories = cats
	}
	if len(cfg.Conversion.Categories) == 0 {
		cfg.Conversion.Categories = types.DefaultCategories()
	}
	return cfg, nil
}

// categoriesFile is the on-disk form of a category list.
type categoriesFile struct {
	Categories []types.Category `yaml:"categories"`
}

// loadCategoriesFile reads a YAML file of the form
//
//	categories:
//	  - name: common
//	    label: 공통발주서
//	    template_field: common_template
//	    keywords: [천도복숭아, 신비복숭아, 신틸라]
func loadCategoriesFile(path string) ([]types.Category, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading categories file %s: %w", path, err)
	}
	var cf categoriesFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("parsing categories file %s: %w", path, err)
	}
	if len(cf.Categories) == 0 {
		return nil, fmt.Errorf("categories file %s defines no categories", path)
	}
	return cf.Categories, nil
}
