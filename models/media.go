package models

// MediaOrigin records how a media asset was produced.
type MediaOrigin string

const (
	OriginCameraSnapshot  MediaOrigin = "camera-snapshot"
	OriginCameraRecording MediaOrigin = "camera-recording"
	OriginFilePick        MediaOrigin = "file-pick"
)

// MediaAsset is the transient, client-only blob produced by capture or file
// selection. It lives only for the duration of one submission: the upload
// orchestrator consumes it and only the remote reference survives.
type MediaAsset struct {
	Data     []byte
	MimeType string
	Origin   MediaOrigin
}

// Size returns the byte length of the asset.
func (a MediaAsset) Size() int64 {
	return int64(len(a.Data))
}

// MediaRef is the typed reference returned by a successful upload.
type MediaRef struct {
	URL  string    `json:"url"`
	Kind MediaKind `json:"kind"`
}
