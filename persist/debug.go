//-----------------------------------------------------------------------------
/*

Debug YAML rendering: a human-readable alongside-format for the same
Document the JSON path saves, for diagnostics only. Nothing reads this
format back in; spec.md §6's persisted format is JSON only.

*/
//-----------------------------------------------------------------------------

package persist

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/sequoia-hope/waffle-iron/feature"
)

// DebugYAML renders tree's document shape as YAML rather than JSON, for a
// human skimming a dump rather than a host program reloading it.
func DebugYAML(tree *feature.Tree) (string, error) {
	data, err := yaml.Marshal(buildDocument(tree))
	if err != nil {
		return "", fmt.Errorf("persist: marshal yaml: %w", err)
	}
	return string(data), nil
}
