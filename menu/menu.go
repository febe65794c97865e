// Package menu implements the interactive console: a main menu, a per-file
// submenu and the prompts feeding them.
//
// The controller is a three-state machine (MainMenu, FileSubmenu, Exit).
// Every failure is reported on the console and control returns to the main
// menu, except a failed string write which ends Run with an error.
package menu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/message"

	"github.com/kchaow/filemanager"
	"github.com/kchaow/filemanager/config"
	"github.com/kchaow/filemanager/internal/i18n"
	"github.com/kchaow/filemanager/internal/util"
	"github.com/kchaow/filemanager/pathcheck"
)

// VolumeLister reports the storage roots shown by the volumes action
type VolumeLister interface {
	List() []filemanager.VolumeInfo
}

// Controller drives one console session
type Controller struct {
	in         *bufio.Reader
	out        io.Writer
	printer    *message.Printer
	defaultDir string
	volumes    VolumeLister

	state    State
	selected filemanager.FileTarget

	mainActions map[MainAction]func() error
	fileActions map[FileAction]func(filemanager.FileTarget) error
}

// NewController creates a Controller reading answers from in and writing the
// console to out. defaultDir is used when the directory prompt gets "-".
func NewController(in io.Reader, out io.Writer, defaultDir string, printer *message.Printer, volumes VolumeLister) *Controller {
	c := &Controller{
		in:         bufio.NewReader(in),
		out:        out,
		printer:    printer,
		defaultDir: defaultDir,
		volumes:    volumes,
		state:      StateMainMenu,
	}
	c.mainActions = map[MainAction]func() error{
		MainCreate:  c.createFile,
		MainVolumes: c.printVolumes,
		MainSelect:  c.selectFile,
	}
	c.fileActions = map[FileAction]func(filemanager.FileTarget) error{
		FileWrite:     c.writeString,
		FilePrint:     c.printFile,
		FileDelete:    c.deleteFile,
		FileWriteJSON: c.writeJSON,
		FilePrintJSON: c.printJSON,
		FileWriteXML:  c.writeXML,
		FilePrintXML:  c.printXML,
		FileArchive:   c.archiveFile,
		FileAppend:    c.appendString,
		FileInfo:      c.fileInfo,
	}
	return c
}

// State returns the current state
func (c *Controller) State() State {
	return c.state
}

// Run loops until the user exits or input ends. The only error returned is a
// failed string write.
func (c *Controller) Run() error {
	logger := util.GetLogger("Menu.Run")
	logger.Debug().Str("defaultDir", c.defaultDir).Msg("Console started")

	for c.state != StateExit {
		var err error
		switch c.state {
		case StateMainMenu:
			err = c.mainMenu()
		case StateFileSubmenu:
			err = c.fileMenu()
		}
		if errors.Is(err, io.EOF) {
			logger.Debug().Msg("Input closed")
			c.state = StateExit
			return nil
		}
		if err != nil {
			c.state = StateExit
			return err
		}
	}
	logger.Debug().Msg("Console exited")
	return nil
}

func (c *Controller) mainMenu() error {
	c.say(i18n.MsgChooseAction)
	for _, label := range mainLabels {
		c.say(label)
	}
	n, err := c.readChoice()
	if err != nil {
		return err
	}

	action, ok := c.mainActions[ParseMainAction(n)]
	if !ok {
		c.state = StateExit
		return nil
	}
	return action()
}

func (c *Controller) fileMenu() error {
	c.say(i18n.MsgChooseAction)
	for _, label := range fileLabels {
		c.say(label)
	}
	n, err := c.readChoice()
	if err != nil {
		return err
	}

	c.state = StateMainMenu
	choice := ParseFileAction(n)
	action, ok := c.fileActions[choice]
	if !ok {
		return nil
	}
	logger := util.GetLogger("Menu.FileAction")
	logger.Debug().Stringer("action", choice).Str("path", c.selected.Path()).Msg("Running file action")
	return action(c.selected)
}

// say prints a localized line
func (c *Controller) say(key string, args ...any) {
	fmt.Fprintln(c.out, c.printer.Sprintf(key, args...))
}

// ask prints a localized prompt and reads the trimmed answer
func (c *Controller) ask(key string, args ...any) (string, error) {
	fmt.Fprint(c.out, c.printer.Sprintf(key, args...))
	line, err := c.readLine()
	return strings.TrimSpace(line), err
}

// readLine returns the next input line without its terminator. A final line
// lacking a newline is still returned; io.EOF follows on the next call.
func (c *Controller) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// readChoice prompts until a whole number is entered
func (c *Controller) readChoice() (int, error) {
	for {
		line, err := c.ask(i18n.MsgChoicePrompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		if err == nil {
			return n, nil
		}
		c.say(i18n.MsgEnterNumber)
	}
}

// askDir prompts until an existing directory is entered
func (c *Controller) askDir() (string, error) {
	for {
		line, err := c.ask(i18n.MsgDirPrompt, config.DefaultDirToken, c.defaultDir)
		if err != nil {
			return "", err
		}
		dir := pathcheck.ResolveDir(line, c.defaultDir, config.DefaultDirToken)
		if pathcheck.IsValidDirectory(dir) {
			return dir, nil
		}
		c.say(i18n.MsgDirInvalid, dir)
	}
}

// askName prompts until a valid file name is entered
func (c *Controller) askName() (string, error) {
	for {
		name, err := c.ask(i18n.MsgNamePrompt)
		if err != nil {
			return "", err
		}
		if pathcheck.IsValidFileName(name) {
			return name, nil
		}
		c.say(i18n.MsgNameInvalid, name)
	}
}

// askPerson collects the three record fields
func (c *Controller) askPerson() (filemanager.PersonRecord, error) {
	var p filemanager.PersonRecord
	var err error
	if p.FirstName, err = c.ask(i18n.MsgFirstName); err != nil {
		return p, err
	}
	if p.LastName, err = c.ask(i18n.MsgLastName); err != nil {
		return p, err
	}
	if p.MiddleName, err = c.ask(i18n.MsgMiddleName); err != nil {
		return p, err
	}
	return p, nil
}
