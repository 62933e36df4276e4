package vt

import (
	"bytes"
	"encoding/hex"
)

// Pending-mode bracketing is recognized directly off the raw DCS payload
// bytes ("=1s" / "=2s", spec.md §4.8) before the rest of dispatchDCS's
// prefix table ever runs — ParserCore checks these first so it can drive
// PendingMode directly instead of going through the DispatchTable.

func isPendingModeStart(payload []byte) bool { return bytes.Equal(payload, []byte("=1s")) }
func isPendingModeStop(payload []byte) bool  { return bytes.Equal(payload, []byte("=2s")) }

var (
	kittyCmdPrefix        = []byte("@kitty-cmd{")
	kittyOverlayReady     = []byte("@kitty-overlay-ready")
	kittyKittenResult     = []byte("@kitty-kitten-result:")
	kittyPrintPrefix      = []byte("@kitty-print:")
	kittyEchoPrefix       = []byte("@kitty-echo:")
	kittySSHPrefix        = []byte("@kitty-ssh:")
	kittyAskpassPrefix    = []byte("@kitty-askpass:")
	kittyClonePrefix      = []byte("@kitty-clone:")
	kittyEditPrefix       = []byte("@kitty-edit:")
	kittyRestoreCursorApp = []byte("@kitty-restore-cursor-appearance")
)

// dispatchDCS implements the DCS prefix table of spec.md §4.6/§4.8: xterm's
// termcap/terminfo query ("+q"/"$q"), and kitty's vendor remote-control
// payloads ("@kitty-..."), each forwarded to its own named Screen method
// rather than one stringly-typed dispatch — spec.md §9's "name the kitty
// DCS subkinds" note.
func (d *DispatchTable) dispatchDCS(payload []byte) {
	switch {
	case bytes.HasPrefix(payload, []byte("+q")):
		d.dispatchTermcapQuery(payload[len("+q"):])
	case bytes.HasPrefix(payload, []byte("$q")):
		d.screen.RequestTermcap(payload[len("$q"):])
	case bytes.HasPrefix(payload, kittyCmdPrefix):
		d.screen.HandleRemoteCmd(payload[len("@kitty-cmd"):])
	case bytes.Equal(payload, kittyOverlayReady):
		d.screen.HandleOverlayReady(nil)
	case bytes.HasPrefix(payload, kittyKittenResult):
		d.screen.HandleKittenResult(payload[len(kittyKittenResult):])
	case bytes.HasPrefix(payload, kittyPrintPrefix):
		d.screen.HandleRemotePrint(payload[len(kittyPrintPrefix):])
	case bytes.HasPrefix(payload, kittyEchoPrefix):
		d.screen.HandleRemoteEcho(payload[len(kittyEchoPrefix):])
	case bytes.HasPrefix(payload, kittySSHPrefix):
		d.screen.HandleRemoteSSH(payload[len(kittySSHPrefix):])
	case bytes.HasPrefix(payload, kittyAskpassPrefix):
		d.screen.HandleRemoteAskpass(payload[len(kittyAskpassPrefix):])
	case bytes.HasPrefix(payload, kittyClonePrefix):
		d.screen.HandleRemoteClone(payload[len(kittyClonePrefix):])
	case bytes.HasPrefix(payload, kittyEditPrefix):
		d.screen.HandleRemoteEdit(payload[len(kittyEditPrefix):])
	case bytes.Equal(payload, kittyRestoreCursorApp):
		d.screen.HandleRestoreCursorAppearance(nil)
	default:
		d.reportUnknownString(KindDCS, payload)
	}
}

// dispatchTermcapQuery decodes xterm's "+q" termcap/terminfo request: a
// semicolon-separated list of hex-encoded capability names, forwarded
// still-encoded (Screen.RequestCapabilities takes the raw query form so it
// can echo unanswered names back per the XTGETTCAP reply format).
func (d *DispatchTable) dispatchTermcapQuery(rest []byte) {
	if _, err := hex.DecodeString(string(bytes.ReplaceAll(rest, []byte(";"), nil))); err != nil {
		d.reportUnknownString(KindDCS, rest)
		return
	}
	d.screen.RequestCapabilities('+', rest)
}
