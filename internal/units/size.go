// Package units formats byte counts for display
package units

import "fmt"

var decimalUnits = []string{"B", "kB", "MB", "GB", "TB", "PB", "EB"}

// HumanSize formats a byte count with decimal (1000 based) units and three decimals
func HumanSize(size float64) string {
	i := 0
	for size >= 1000 && i < len(decimalUnits)-1 {
		size /= 1000
		i++
	}
	return fmt.Sprintf("%.3f%s", size, decimalUnits[i])
}
