package menu

import (
	"fmt"

	"github.com/kchaow/filemanager/internal/i18n"
)

// State is a MenuController state
type State int

const (
	StateMainMenu State = iota
	StateFileSubmenu
	StateExit
)

func (s State) String() string {
	switch s {
	case StateMainMenu:
		return "MainMenu"
	case StateFileSubmenu:
		return "FileSubmenu"
	case StateExit:
		return "Exit"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// MainAction is a validated main menu choice
type MainAction int

const (
	MainExit MainAction = iota
	MainCreate
	MainVolumes
	MainSelect
)

// ParseMainAction maps a typed number onto a MainAction. Any number without
// an action means exit.
func ParseMainAction(n int) MainAction {
	switch a := MainAction(n); a {
	case MainCreate, MainVolumes, MainSelect:
		return a
	default:
		return MainExit
	}
}

// FileAction is a validated file submenu choice
type FileAction int

const (
	FileBack FileAction = iota
	FileWrite
	FilePrint
	FileDelete
	FileWriteJSON
	FilePrintJSON
	FileWriteXML
	FilePrintXML
	FileArchive
	FileAppend
	FileInfo
)

// ParseFileAction maps a typed number onto a FileAction. Numbers without an
// action go back to the main menu.
func ParseFileAction(n int) FileAction {
	if a := FileAction(n); a >= FileWrite && a <= FileInfo {
		return a
	}
	return FileBack
}

func (a FileAction) String() string {
	names := [...]string{"back", "write", "print", "delete", "write-json", "print-json",
		"write-xml", "print-xml", "archive", "append", "info"}
	if a >= 0 && int(a) < len(names) {
		return names[a]
	}
	return fmt.Sprintf("FileAction(%d)", int(a))
}

// Menu labels in display order
var (
	mainLabels = []string{
		i18n.MsgMainCreate,
		i18n.MsgMainVolumes,
		i18n.MsgMainSelect,
		i18n.MsgMainExit,
	}
	fileLabels = []string{
		i18n.MsgSubWrite,
		i18n.MsgSubPrint,
		i18n.MsgSubDelete,
		i18n.MsgSubWriteJSON,
		i18n.MsgSubPrintJSON,
		i18n.MsgSubWriteXML,
		i18n.MsgSubPrintXML,
		i18n.MsgSubArchive,
		i18n.MsgSubAppend,
		i18n.MsgSubInfo,
	}
)
