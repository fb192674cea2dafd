package video

// Resource is a raw binary to be stored for a video.
type Resource struct {
	Content     []byte
	Checksum    string
	ContentType string
	Name        string
}

// VideoResource pairs a binary resource with the slot it targets.
type VideoResource struct {
	Resource Resource
	Type     MediaType
}
