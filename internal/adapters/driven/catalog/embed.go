package catalog

import _ "embed"

//go:embed topics.yaml
var defaultCatalog []byte
