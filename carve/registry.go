// SPDX-License-Identifier: MIT
// Package: lvmaze/carve
//
// registry.go — name lookup for the carving algorithms.

package carve

import (
	"fmt"
	"sort"
	"strings"
)

var registry = map[string]Algorithm{}

func register(a Algorithm) { registry[a.Name()] = a }

func init() {
	for _, a := range []Algorithm{
		BinaryTree{}, Sidewinder{}, AldousBroder{}, Wilson{}, HuntAndKill{},
		RecursiveBacktracker{}, CrossStitch{}, Kruskal{}, Prim{},
	} {
		register(a)
	}
}

// canonical folds case, spaces and dashes: "Hunt-and-Kill" → "hunt_and_kill".
func canonical(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	return strings.NewReplacer(" ", "_", "-", "_").Replace(s)
}

// Lookup resolves an algorithm by name.
func Lookup(name string) (Algorithm, error) {
	key := canonical(name)
	if a, ok := registry[key]; ok {
		return a, nil
	}
	// tolerate names written without separators
	flat := strings.ReplaceAll(key, "_", "")
	for k, a := range registry {
		if strings.ReplaceAll(k, "_", "") == flat {
			return a, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Names lists registered algorithms alphabetically.
func Names() []string {
	out := make([]string, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

