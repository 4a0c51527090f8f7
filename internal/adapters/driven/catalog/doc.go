// Package catalog loads the topic catalog from YAML.
//
// The default catalog is embedded in the binary. A file on disk with the
// same shape can replace it, and Watcher reloads that file when it changes.
package catalog
