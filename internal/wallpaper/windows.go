//go:build windows

package wallpaper

import (
	"context"
	"unsafe"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"

	"github.com/five82/apodwall/internal/faults"
)

const (
	spiSetDeskWallpaper = 0x0014
	spifUpdateIniFile   = 0x01
	spifSendChange      = 0x02
)

var (
	user32                   = windows.NewLazySystemDLL("user32.dll")
	procSystemParametersInfo = user32.NewProc("SystemParametersInfoW")
)

type windowsSetter struct{}

func newWindowsSetter() Setter { return windowsSetter{} }

func (windowsSetter) Name() string { return "windows" }

func (windowsSetter) Set(ctx context.Context, imagePath string, style Style) error {
	if err := ctx.Err(); err != nil {
		return faults.Wrap(faults.ErrOS, "wallpaper", "windows", "", err)
	}
	abs, err := resolveImage(imagePath)
	if err != nil {
		return err
	}
	native, ok := windowsStyles[style]
	if !ok {
		return faults.Wrap(faults.ErrInvalidStyle, "wallpaper", "windows", string(style), nil)
	}

	// Style values must be in place before the change broadcast.
	key, err := registry.OpenKey(registry.CURRENT_USER, `Control Panel\Desktop`, registry.SET_VALUE)
	if err != nil {
		return faults.Wrap(faults.ErrOS, "wallpaper", "open registry key", "", err)
	}
	defer func() { _ = key.Close() }()
	if err := key.SetStringValue("WallpaperStyle", native.WallpaperStyle); err != nil {
		return faults.Wrap(faults.ErrOS, "wallpaper", "set WallpaperStyle", "", err)
	}
	if err := key.SetStringValue("TileWallpaper", native.TileWallpaper); err != nil {
		return faults.Wrap(faults.ErrOS, "wallpaper", "set TileWallpaper", "", err)
	}

	ptr, err := windows.UTF16PtrFromString(abs)
	if err != nil {
		return faults.Wrap(faults.ErrInvalidPath, "wallpaper", "encode path", abs, err)
	}
	ret, _, callErr := procSystemParametersInfo.Call(
		spiSetDeskWallpaper,
		0,
		uintptr(unsafe.Pointer(ptr)),
		spifUpdateIniFile|spifSendChange,
	)
	if ret == 0 {
		return faults.Wrap(faults.ErrOS, "wallpaper", "SystemParametersInfoW", "", callErr)
	}
	return nil
}
