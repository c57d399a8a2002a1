// SPDX-License-Identifier: MIT
package main

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/spanforest/core"
)

// kindsValue is a comma-separated list of store kinds usable as a flag.
type kindsValue []core.Kind

var _ pflag.Value = (*kindsValue)(nil)

func (k *kindsValue) String() string {
	names := make([]string, len(*k))
	for i, kind := range *k {
		names[i] = kind.String()
	}

	return strings.Join(names, ",")
}

func (k *kindsValue) Set(s string) error {
	var out []core.Kind
	for _, name := range strings.Split(s, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		kind, err := core.ParseKind(name)
		if err != nil {
			return errors.Wrapf(err, "kind %q", name)
		}
		out = append(out, kind)
	}
	if len(out) == 0 {
		return errors.New("at least one kind is required")
	}
	*k = out

	return nil
}

func (k *kindsValue) Type() string { return "kinds" }
