package platform

import (
	"sort"
	"strings"
)

// OS is a canonical operating system identifier, matching GOOS naming
type OS string

// Arch is a canonical CPU architecture identifier, matching GOARCH naming
type Arch string

const (
	OSAIX       OS = "aix"
	OSAndroid   OS = "android"
	OSDarwin    OS = "darwin"
	OSDragonfly OS = "dragonfly"
	OSFreeBSD   OS = "freebsd"
	OSIllumos   OS = "illumos"
	OSIOS       OS = "ios"
	OSJS        OS = "js"
	OSLinux     OS = "linux"
	OSNetBSD    OS = "netbsd"
	OSOpenBSD   OS = "openbsd"
	OSPlan9     OS = "plan9"
	OSSolaris   OS = "solaris"
	OSWASIP1    OS = "wasip1"
	OSWindows   OS = "windows"
)

const (
	Arch386      Arch = "386"
	ArchAMD64    Arch = "amd64"
	ArchARM      Arch = "arm"
	ArchARM64    Arch = "arm64"
	ArchLoong64  Arch = "loong64"
	ArchMIPS     Arch = "mips"
	ArchMIPSLE   Arch = "mipsle"
	ArchMIPS64   Arch = "mips64"
	ArchMIPS64LE Arch = "mips64le"
	ArchPPC64    Arch = "ppc64"
	ArchPPC64LE  Arch = "ppc64le"
	ArchRISCV64  Arch = "riscv64"
	ArchS390X    Arch = "s390x"
	ArchWASM     Arch = "wasm"
)

type osRule struct {
	pattern string
	os      OS
}

type archRule struct {
	pattern string
	arch    Arch
}

var (
	// exact names, lower case, canonical values are added in init
	osAliases = map[string]OS{
		"mac":          OSDarwin,
		"mac os":       OSDarwin,
		"mac os x":     OSDarwin,
		"macos":        OSDarwin,
		"macosx":       OSDarwin,
		"os x":         OSDarwin,
		"osx":          OSDarwin,
		"win":          OSWindows,
		"win32":        OSWindows,
		"win64":        OSWindows,
		"windows_nt":   OSWindows,
		"gnu/linux":    OSLinux,
		"dragonflybsd": OSDragonfly,
		"sunos":        OSSolaris,
		"iphoneos":     OSIOS,
		"wasi":         OSWASIP1,
	}
	// substring matches, first match wins
	osRules = []osRule{
		{"darwin", OSDarwin},
		{"mac os", OSDarwin},
		{"macos", OSDarwin},
		{"os x", OSDarwin},
		{"osx", OSDarwin},
		{"windows", OSWindows},
		{"mingw", OSWindows},
		{"msys", OSWindows},
		{"cygwin", OSWindows},
		{"android", OSAndroid},
		{"linux", OSLinux},
		{"freebsd", OSFreeBSD},
		{"netbsd", OSNetBSD},
		{"openbsd", OSOpenBSD},
		{"dragonfly", OSDragonfly},
		{"sunos", OSSolaris},
		{"solaris", OSSolaris},
		{"illumos", OSIllumos},
		{"aix", OSAIX},
		{"plan9", OSPlan9},
		{"plan 9", OSPlan9},
	}

	archAliases = map[string]Arch{
		"x86_64":      ArchAMD64,
		"x86-64":      ArchAMD64,
		"x64":         ArchAMD64,
		"x8664":       ArchAMD64,
		"em64t":       ArchAMD64,
		"intel64":     ArchAMD64,
		"i386":        Arch386,
		"i486":        Arch386,
		"i586":        Arch386,
		"i686":        Arch386,
		"i86pc":       Arch386,
		"ia32":        Arch386,
		"x86":         Arch386,
		"x86_32":      Arch386,
		"aarch64":     ArchARM64,
		"arm64e":      ArchARM64,
		"armv8":       ArchARM64,
		"armv5l":      ArchARM,
		"armv6":       ArchARM,
		"armv6l":      ArchARM,
		"armv7":       ArchARM,
		"armv7a":      ArchARM,
		"armv7l":      ArchARM,
		"armv8l":      ArchARM,
		"armel":       ArchARM,
		"armhf":       ArchARM,
		"loongarch64": ArchLoong64,
		"mipsel":      ArchMIPSLE,
		"mips64el":    ArchMIPS64LE,
		"powerpc64":   ArchPPC64,
		"powerpc64le": ArchPPC64LE,
		"ppc64el":     ArchPPC64LE,
		"riscv":       ArchRISCV64,
		"wasm32":      ArchWASM,
	}
	// 32-bit ABIs on 64-bit hardware, these contain a 64-bit name and are left unrecognized
	archUnmapped = map[string]bool{
		"amd64p32": true,
		"arm64_32": true,
	}
	// substring matches, first match wins, so wider names come before their prefixes
	archRules = []archRule{
		{"86_64", ArchAMD64},
		{"x86-64", ArchAMD64},
		{"amd64", ArchAMD64},
		{"x64", ArchAMD64},
		{"aarch64", ArchARM64},
		{"arm64", ArchARM64},
		{"armv8", ArchARM64},
		{"armv9", ArchARM64},
		{"arm", ArchARM},
		{"86", Arch386},
		{"ppc64le", ArchPPC64LE},
		{"powerpc64le", ArchPPC64LE},
		{"ppc64", ArchPPC64},
		{"powerpc64", ArchPPC64},
		{"s390x", ArchS390X},
		{"riscv64", ArchRISCV64},
		{"loong", ArchLoong64},
		{"mips64le", ArchMIPS64LE},
		{"mips64el", ArchMIPS64LE},
		{"mips64", ArchMIPS64},
		{"mipsle", ArchMIPSLE},
		{"mipsel", ArchMIPSLE},
		{"mips", ArchMIPS},
		{"wasm", ArchWASM},
	}

	knownOS = []OS{
		OSAIX, OSAndroid, OSDarwin, OSDragonfly, OSFreeBSD, OSIllumos, OSIOS, OSJS,
		OSLinux, OSNetBSD, OSOpenBSD, OSPlan9, OSSolaris, OSWASIP1, OSWindows,
	}
	knownArch = []Arch{
		Arch386, ArchAMD64, ArchARM, ArchARM64, ArchLoong64, ArchMIPS, ArchMIPSLE,
		ArchMIPS64, ArchMIPS64LE, ArchPPC64, ArchPPC64LE, ArchRISCV64, ArchS390X, ArchWASM,
	}
)

func init() {
	for _, os := range knownOS {
		osAliases[string(os)] = os
	}
	for _, arch := range knownArch {
		archAliases[string(arch)] = arch
	}
}

// LookupOS returns the canonical OS for a raw name, ok is false when the name is not recognized
func LookupOS(raw string) (OS, bool) {
	name := strings.ToLower(strings.TrimSpace(raw))
	if name == "" {
		return "", false
	}
	if os, ok := osAliases[name]; ok {
		return os, true
	}
	for _, r := range osRules {
		if strings.Contains(name, r.pattern) {
			return r.os, true
		}
	}
	return "", false
}

// LookupArch returns the canonical Arch for a raw name, ok is false when the name is not recognized
func LookupArch(raw string) (Arch, bool) {
	name := strings.ToLower(strings.TrimSpace(raw))
	if name == "" {
		return "", false
	}
	if arch, ok := archAliases[name]; ok {
		return arch, true
	}
	if archUnmapped[name] {
		return "", false
	}
	for _, r := range archRules {
		if strings.Contains(name, r.pattern) {
			return r.arch, true
		}
	}
	return "", false
}

// NormalizeOS converts a raw OS name to its canonical identifier.
// Unrecognized names are returned unchanged.
func NormalizeOS(raw string) OS {
	if os, ok := LookupOS(raw); ok {
		return os
	}
	return OS(raw)
}

// NormalizeArch converts a raw architecture name to its canonical identifier.
// Unrecognized names are returned unchanged.
func NormalizeArch(raw string) Arch {
	if arch, ok := LookupArch(raw); ok {
		return arch
	}
	return Arch(raw)
}

// Known reports if the OS is part of the canonical vocabulary
func (os OS) Known() bool {
	for _, k := range knownOS {
		if os == k {
			return true
		}
	}
	return false
}

// Known reports if the Arch is part of the canonical vocabulary
func (arch Arch) Known() bool {
	for _, k := range knownArch {
		if arch == k {
			return true
		}
	}
	return false
}

// KnownOS lists every canonical OS in sorted order
func KnownOS() []OS {
	list := append([]OS{}, knownOS...)
	sort.Slice(list, func(i, j int) bool { return list[i] < list[j] })
	return list
}

// KnownArch lists every canonical Arch in sorted order
func KnownArch() []Arch {
	list := append([]Arch{}, knownArch...)
	sort.Slice(list, func(i, j int) bool { return list[i] < list[j] })
	return list
}
