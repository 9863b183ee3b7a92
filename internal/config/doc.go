// SPDX-License-Identifier: MIT

// Package config loads epgclean settings.
//
// Precedence is environment over file over defaults. The file is strict YAML: unknown
// keys and trailing documents are rejected. The default channel allow-list is embedded
// from channels.yaml.
package config
