// Package file keeps the guide's settings in ~/.lmsguide/config.toml.
package file
