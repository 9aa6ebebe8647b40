package burnpage

import (
	"fmt"

	"discburn/internal/mmc"
	"discburn/internal/options"
)

// State is the page's media state.
type State int

const (
	StateMediaUnavailable State = iota
	StateMediaReady
)

func (s State) String() string {
	switch s {
	case StateMediaReady:
		return "media_ready"
	default:
		return "media_unavailable"
	}
}

// NoticeID identifies a notice the user can dismiss for good.
type NoticeID string

const (
	// NoticeRawImage explains that an image with a TOC is written raw.
	NoticeRawImage NoticeID = "raw-image"
	// NoticeNoFixation warns that an unfixated disc is unreadable in most drives.
	NoticeNoFixation NoticeID = "no-fixation"
)

// NoticeIDs lists every dismissable notice.
var NoticeIDs = []NoticeID{NoticeRawImage, NoticeNoFixation}

// ParseNoticeID maps a user-supplied token to a notice.
func ParseNoticeID(value string) (NoticeID, error) {
	for _, id := range NoticeIDs {
		if string(id) == value {
			return id, nil
		}
	}
	return "", fmt.Errorf("unknown notice %q", value)
}

// NoticeKind grades a notice.
type NoticeKind int

const (
	NoticeInfo NoticeKind = iota
	NoticeWarning
)

// Notice is a localized message shown beside the page.
type Notice struct {
	ID   NoticeID
	Kind NoticeKind
	Text string
}

// CopyPresets are the copy counts offered for quick selection. Any positive
// count is accepted.
var CopyPresets = []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

// SpeedOption is one entry of the speed list.
type SpeedOption struct {
	Value int
	Label string
}

// MethodOption is one entry of the write method list. The label is display
// text; selection always travels as Value.
type MethodOption struct {
	Value mmc.WriteMethod
	Label string
}

// View is a snapshot of what the page displays.
type View struct {
	State      State
	DeviceID   string
	DeviceName string
	Profile    mmc.Profile
	// Status is the localized media line: the unavailability reason or the
	// ready message.
	Status string
	// Warning is set when the image needs a raw write method the recorder
	// lacks. It is reported whether or not media is ready.
	Warning  string
	Notices  []Notice
	Speeds   []SpeedOption
	Methods  []MethodOption
	OnTheFly bool // on-the-fly checkbox enabled
	Verify   bool // verify checkbox enabled
	Simulate bool // simulate checkbox enabled
	WriteBUP bool // write-BUP checkbox enabled
	Inputs   options.Inputs
}
