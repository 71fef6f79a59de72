package flow

import "github.com/google/uuid"

// MediaClass classifies a binary attachment. A reply node holds at most one
// attachment per class.
type MediaClass string

const (
	MediaImage    MediaClass = "image"
	MediaVideo    MediaClass = "video"
	MediaAudio    MediaClass = "audio"
	MediaDocument MediaClass = "document"
)

// MediaClasses lists every attachment class in part-naming order.
func MediaClasses() []MediaClass {
	return []MediaClass{MediaImage, MediaVideo, MediaAudio, MediaDocument}
}

// Valid reports whether c is a known media class.
func (c MediaClass) Valid() bool {
	switch c {
	case MediaImage, MediaVideo, MediaAudio, MediaDocument:
		return true
	}
	return false
}

// Attachment is a binary media file bound to a reply node. The raw bytes are
// held in memory until the save pipeline uploads them. Preview is an
// ephemeral reference handed to the authoring surface; it is revoked together
// with the bytes, never separately.
type Attachment struct {
	Filename string `json:"filename" yaml:"filename" mapstructure:"filename"`
	MIME     string `json:"mime" yaml:"mime" mapstructure:"mime"`
	Preview  string `json:"preview,omitempty" yaml:"preview,omitempty" mapstructure:"preview,omitempty"`

	// Data is excluded from every serialized form; it travels only as a
	// multipart part.
	Data []byte `json:"-" yaml:"-" mapstructure:"-"`
}

// NewAttachment wraps raw media bytes in an owned handle with a fresh
// preview reference.
func NewAttachment(filename, mime string, data []byte) *Attachment {
	return &Attachment{
		Filename: filename,
		MIME:     mime,
		Preview:  "preview://" + uuid.NewString(),
		Data:     data,
	}
}

// Released reports whether the handle no longer owns any media.
func (a *Attachment) Released() bool { return a.Data == nil && a.Preview == "" }

// Release drops the in-memory bytes and revokes the preview reference.
// Safe to call more than once.
func (a *Attachment) Release() {
	a.Data = nil
	a.Preview = ""
}
