package main

import (
	"strings"

	"github.com/spf13/pflag"

	"github.com/regclient/toolsel/types/platform"
)

var (
	_ pflag.Value      = (*platformValue)(nil)
	_ pflag.SliceValue = (*platformListValue)(nil)
)

// platformValue parses an os/arch[/osversion] flag, "local" is the host platform
type platformValue struct {
	p   *platform.Platform
	set bool
}

func newPlatformValue(p *platform.Platform) *platformValue {
	return &platformValue{p: p}
}

func (v *platformValue) Set(s string) error {
	p, err := platform.Parse(s)
	if err != nil {
		return err
	}
	*v.p = p
	v.set = true
	return nil
}

func (v *platformValue) String() string {
	if v.p == nil || !v.set {
		return "local"
	}
	return v.p.String()
}

func (v *platformValue) Type() string {
	return "platform"
}

// platformListValue collects a repeated or comma separated platform flag
type platformListValue struct {
	list *[]platform.Platform
}

func newPlatformListValue(list *[]platform.Platform) *platformListValue {
	return &platformListValue{list: list}
}

func (v *platformListValue) Set(s string) error {
	for _, entry := range strings.Split(s, ",") {
		if err := v.Append(entry); err != nil {
			return err
		}
	}
	return nil
}

func (v *platformListValue) String() string {
	return "[" + strings.Join(v.GetSlice(), ",") + "]"
}

func (v *platformListValue) Type() string {
	return "platforms"
}

func (v *platformListValue) Append(s string) error {
	p, err := platform.Parse(s)
	if err != nil {
		return err
	}
	*v.list = append(*v.list, p)
	return nil
}

func (v *platformListValue) Replace(list []string) error {
	parsed := make([]platform.Platform, 0, len(list))
	for _, s := range list {
		p, err := platform.Parse(s)
		if err != nil {
			return err
		}
		parsed = append(parsed, p)
	}
	*v.list = parsed
	return nil
}

func (v *platformListValue) GetSlice() []string {
	out := make([]string, 0, len(*v.list))
	for _, p := range *v.list {
		out = append(out, p.String())
	}
	return out
}
