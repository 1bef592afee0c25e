package release

import (
	"bytes"
	"fmt"
	"text/tabwriter"

	"github.com/regclient/toolsel/internal/units"
)

// MarshalPretty outputs the variant in a human readable table
func (v Variant) MarshalPretty() ([]byte, error) {
	buf := &bytes.Buffer{}
	tw := tabwriter.NewWriter(buf, 0, 0, 1, ' ', 0)
	fmt.Fprintf(tw, "Platform:\t%s\n", v.Platform().String())
	if v.Versioned() {
		fmt.Fprintf(tw, "Min OS Version:\t%s\n", v.OSXVersion)
	}
	if v.URL != "" {
		fmt.Fprintf(tw, "URL:\t%s\n", v.URL)
	}
	if v.Checksum != "" {
		fmt.Fprintf(tw, "Checksum:\t%s\n", v.Checksum.String())
	}
	if v.Size > 0 {
		fmt.Fprintf(tw, "Size:\t%s\n", units.HumanSize(float64(v.Size)))
	}
	err := tw.Flush()
	return buf.Bytes(), err
}

// MarshalPretty outputs the release and its variants in a human readable table
func (r Release) MarshalPretty() ([]byte, error) {
	buf := &bytes.Buffer{}
	tw := tabwriter.NewWriter(buf, 0, 0, 1, ' ', 0)
	fmt.Fprintf(tw, "ID:\t%s\n", r.ID)
	if r.Name != "" {
		fmt.Fprintf(tw, "Name:\t%s\n", r.Name)
	}
	fmt.Fprintf(tw, "\t\n")
	fmt.Fprintf(tw, "Variants:\t\n")
	for _, v := range r.Variants {
		fmt.Fprintf(tw, "  %s\t%s\n", v.String(), v.URL)
	}
	err := tw.Flush()
	return buf.Bytes(), err
}
