package app

// State is a step of the fetch-and-set pipeline.
type State int

const (
	StateInit State = iota
	StateConfigLoaded
	StateMetadataFetched
	StateImageReady
	StateWallpaperSet
	StateAborted
)

func (s State) String() string {
	switch s {
	case StateInit:
		return "init"
	case StateConfigLoaded:
		return "config_loaded"
	case StateMetadataFetched:
		return "metadata_fetched"
	case StateImageReady:
		return "image_ready"
	case StateWallpaperSet:
		return "wallpaper_set"
	case StateAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

