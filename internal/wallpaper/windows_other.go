//go:build !windows

package wallpaper

func newWindowsSetter() Setter {
	return unsupportedSetter{reason: "windows binding is only built on windows"}
}
