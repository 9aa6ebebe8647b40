package i18n

// Key identifies a translatable message.
type Key string

const (
	KeyMaximum            Key = "speed.maximum"
	KeySpeed              Key = "speed.format"
	KeyMethodSAO          Key = "method.sao"
	KeyMethodTAO          Key = "method.tao"
	KeyMethodTAONoPregap  Key = "method.tao_no_pregap"
	KeyMethodRAW96R       Key = "method.raw96r"
	KeyMethodRAW16        Key = "method.raw16"
	KeyMethodRAW96P       Key = "method.raw96p"
	KeyMethodNone         Key = "method.none"
	KeyMediaInsertBlank   Key = "media.insert_blank"
	KeyMediaUnsupported   Key = "media.unsupported"
	KeyMediaQueryFailed   Key = "media.query_failed"
	KeyMediaReady         Key = "media.ready"
	KeyWarning            Key = "general.warning"
	KeyWarningCloneMethod Key = "warning.clone_write_method"
	KeyNoticeRawImage     Key = "notice.raw_image"
	KeyNoticeNoFixation   Key = "notice.no_fixation"
)

// entries maps language tags to their messages. English is complete; other
// languages may omit keys and fall back to English.
var entries = map[string]map[Key]string{
	"en": {
		KeyMaximum:            "Maximum",
		KeySpeed:              "%s (%d kB/s)",
		KeyMethodSAO:          "Session-At-Once (SAO)",
		KeyMethodTAO:          "Track-At-Once (TAO)",
		KeyMethodTAONoPregap:  "Track-At-Once, no pre-gap",
		KeyMethodRAW96R:       "Raw 96R",
		KeyMethodRAW16:        "Raw 16",
		KeyMethodRAW96P:       "Raw 96P",
		KeyMethodNone:         "Default",
		KeyMediaInsertBlank:   "Please insert a blank disc.",
		KeyMediaUnsupported:   "The inserted media (%s) is not supported.",
		KeyMediaQueryFailed:   "Unable to query the recorder.",
		KeyMediaReady:         "Ready to burn on %s.",
		KeyWarning:            "Warning",
		KeyWarningCloneMethod: "The recorder does not support raw writing (RAW96R or RAW16). The disc image may not be reproduced exactly.",
		KeyNoticeRawImage:     "The image has a TOC file and will be written in raw mode, copying the disc layout exactly as it was read.",
		KeyNoticeNoFixation:   "The disc will not be fixated. Most drives cannot read an unfixated disc until it is fixated.",
	},
	"sv": {
		KeyMaximum:            "Max",
		KeySpeed:              "%s (%d kB/s)",
		KeyMethodSAO:          "Session-At-Once (SAO)",
		KeyMethodTAO:          "Track-At-Once (TAO)",
		KeyMethodTAONoPregap:  "Track-At-Once, utan pre-gap",
		KeyMethodNone:         "Standard",
		KeyMediaInsertBlank:   "Sätt i en tom skiva.",
		KeyMediaUnsupported:   "Den isatta skivan (%s) stöds inte.",
		KeyMediaQueryFailed:   "Det gick inte att fråga brännaren.",
		KeyMediaReady:         "Redo att bränna på %s.",
		KeyWarning:            "Varning",
		KeyWarningCloneMethod: "Brännaren stöder inte rå skrivning (RAW96R eller RAW16). Skivavbilden kanske inte återskapas exakt.",
		KeyNoticeNoFixation:   "Skivan kommer inte att slutföras. De flesta enheter kan inte läsa en oslutförd skiva.",
	},
	"de": {
		KeyMaximum:            "Maximal",
		KeySpeed:              "%s (%d kB/s)",
		KeyMethodTAONoPregap:  "Track-At-Once, ohne Pre-Gap",
		KeyMethodNone:         "Standard",
		KeyMediaInsertBlank:   "Bitte legen Sie einen leeren Datenträger ein.",
		KeyMediaUnsupported:   "Der eingelegte Datenträger (%s) wird nicht unterstützt.",
		KeyMediaQueryFailed:   "Der Brenner konnte nicht abgefragt werden.",
		KeyMediaReady:         "Bereit zum Brennen auf %s.",
		KeyWarning:            "Warnung",
		KeyWarningCloneMethod: "Der Brenner unterstützt kein Raw-Schreiben (RAW96R oder RAW16). Das Abbild wird eventuell nicht exakt reproduziert.",
	},
}
