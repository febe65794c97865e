package menu

import (
	"errors"
	"fmt"

	"github.com/kchaow/filemanager"
	"github.com/kchaow/filemanager/archive"
	"github.com/kchaow/filemanager/codec"
	"github.com/kchaow/filemanager/fileops"
	"github.com/kchaow/filemanager/internal/i18n"
	"github.com/kchaow/filemanager/internal/util"
	"github.com/kchaow/filemanager/pathcheck"
)

const modTimeLayout = "2006-01-02 15:04:05"

func (c *Controller) createFile() error {
	logger := util.GetLogger("Menu.CreateFile")

	dir, err := c.askDir()
	if err != nil {
		return err
	}
	for {
		name, err := c.askName()
		if err != nil {
			return err
		}
		target, err := pathcheck.Resolve(dir, name)
		if err == nil {
			err = fileops.Create(target)
		}
		switch {
		case errors.Is(err, filemanager.ErrAlreadyExists):
			c.say(i18n.MsgFileExists, name)
			continue
		case err != nil:
			logger.Warn().Err(err).Str("dir", dir).Str("name", name).Msg("Failed to create file")
			c.say(i18n.MsgCreateFailed)
		default:
			c.say(i18n.MsgFileCreated)
		}
		return nil
	}
}

func (c *Controller) printVolumes() error {
	volumes := c.volumes.List()
	if len(volumes) == 0 {
		c.say(i18n.MsgNoVolumes)
		return nil
	}
	for _, v := range volumes {
		fsType := v.FilesystemType
		if fsType == "" {
			fsType = c.printer.Sprintf(i18n.MsgUnknown)
		}
		c.say(i18n.MsgVolumeName, v.RootIdentifier)
		c.say(i18n.MsgVolumeLabel, v.DisplayLabel)
		c.say(i18n.MsgVolumeFSType, fsType)
		c.say(i18n.MsgVolumeSize, v.TotalSizeMB)
		c.say("")
	}
	return nil
}

func (c *Controller) selectFile() error {
	dir, err := c.askDir()
	if err != nil {
		return err
	}
	for {
		name, err := c.askName()
		if err != nil {
			return err
		}
		target, err := pathcheck.Resolve(dir, name)
		if err != nil || !pathcheck.Exists(target.Path()) {
			c.say(i18n.MsgFileMissing, name)
			continue
		}
		c.selected = target
		c.state = StateFileSubmenu
		return nil
	}
}

// writeString is the one action whose I/O failure ends the session
func (c *Controller) writeString(target filemanager.FileTarget) error {
	content, err := c.ask(i18n.MsgStringPrompt)
	if err != nil {
		return err
	}
	if err := fileops.Write(target.Path(), content); err != nil {
		if filemanager.Kind(err) == filemanager.KindIO {
			return fmt.Errorf("write string: %w", err)
		}
		c.report("Menu.WriteString", err, i18n.MsgWriteFailed)
		return nil
	}
	c.say(i18n.MsgStringWritten)
	return nil
}

func (c *Controller) appendString(target filemanager.FileTarget) error {
	content, err := c.ask(i18n.MsgStringPrompt)
	if err != nil {
		return err
	}
	if err := fileops.Append(target.Path(), content); err != nil {
		c.report("Menu.AppendString", err, i18n.MsgWriteFailed)
		return nil
	}
	c.say(i18n.MsgStringWritten)
	return nil
}

func (c *Controller) printFile(target filemanager.FileTarget) error {
	if err := fileops.Read(target.Path(), c.out); err != nil {
		c.report("Menu.PrintFile", err, i18n.MsgReadFailed)
	}
	return nil
}

func (c *Controller) deleteFile(target filemanager.FileTarget) error {
	if err := fileops.Delete(target.Path()); err != nil {
		c.report("Menu.DeleteFile", err, i18n.MsgDeleteFailed)
		return nil
	}
	c.say(i18n.MsgDeleted)
	return nil
}

// writeJSON checks the existing array before collecting the new record
func (c *Controller) writeJSON(target filemanager.FileTarget) error {
	path := target.Path()
	if err := codec.CheckExt(path, codec.JSONExt); err != nil {
		c.say(i18n.MsgNotJSON)
		return nil
	}
	if _, err := codec.ReadJSON(path); err != nil {
		c.report("Menu.WriteJSON", err, c.formatMessage(err, i18n.MsgBadStructure))
		return nil
	}

	person, err := c.askPerson()
	if err != nil {
		return err
	}
	if err := codec.AppendJSON(path, person); err != nil {
		c.report("Menu.WriteJSON", err, c.formatMessage(err, i18n.MsgBadStructure))
		return nil
	}
	c.say(i18n.MsgRecordsSaved)
	return nil
}

func (c *Controller) printJSON(target filemanager.FileTarget) error {
	path := target.Path()
	if err := codec.CheckExt(path, codec.JSONExt); err != nil {
		c.say(i18n.MsgNotJSON)
		return nil
	}
	records, err := codec.ReadJSON(path)
	if err != nil {
		c.report("Menu.PrintJSON", err, c.formatMessage(err, i18n.MsgBadJSON))
		return nil
	}
	for _, rec := range records {
		c.printPerson(rec)
		c.say("")
	}
	return nil
}

func (c *Controller) writeXML(target filemanager.FileTarget) error {
	path := target.Path()
	if err := codec.CheckExt(path, codec.XMLExt); err != nil {
		c.say(i18n.MsgNotXML)
		return nil
	}
	person, err := c.askPerson()
	if err != nil {
		return err
	}
	if err := codec.WriteXML(path, person); err != nil {
		c.report("Menu.WriteXML", err, i18n.MsgWriteFailed)
		return nil
	}
	c.say(i18n.MsgRecordsSaved)
	return nil
}

func (c *Controller) printXML(target filemanager.FileTarget) error {
	path := target.Path()
	if err := codec.CheckExt(path, codec.XMLExt); err != nil {
		c.say(i18n.MsgNotXML)
		return nil
	}
	rec, err := codec.ReadXML(path)
	if err != nil {
		c.report("Menu.PrintXML", err, c.formatMessage(err, i18n.MsgBadStructure))
		return nil
	}
	c.printPerson(rec)
	return nil
}

func (c *Controller) archiveFile(target filemanager.FileTarget) error {
	name, err := c.ask(i18n.MsgArchivePrompt)
	if err != nil {
		return err
	}
	if _, err := archive.Archive(target.Path(), name); err != nil {
		switch filemanager.Kind(err) {
		case filemanager.KindAlreadyExists, filemanager.KindValidation:
			c.report("Menu.Archive", err, i18n.MsgArchiveExists, archive.Path(target.Path(), name))
		default:
			c.report("Menu.Archive", err, i18n.MsgArchiveFailed)
		}
		return nil
	}
	c.say(i18n.MsgArchived)
	return nil
}

func (c *Controller) fileInfo(target filemanager.FileTarget) error {
	details, err := fileops.Inspect(target.Path())
	if err != nil {
		c.report("Menu.FileInfo", err, i18n.MsgInfoFailed)
		return nil
	}
	charset := details.Charset
	if charset == "" {
		charset = c.printer.Sprintf(i18n.MsgUnknown)
	}
	c.say(i18n.MsgInfoPath, details.Path)
	c.say(i18n.MsgInfoSize, details.Size)
	c.say(i18n.MsgInfoModified, details.ModTime.Format(modTimeLayout))
	c.say(i18n.MsgInfoMime, details.MimeType)
	c.say(i18n.MsgInfoCharset, charset)
	return nil
}

func (c *Controller) printPerson(rec filemanager.PersonRecord) {
	c.say(i18n.MsgPersonFirst, rec.FirstName)
	c.say(i18n.MsgPersonLast, rec.LastName)
	c.say(i18n.MsgPersonMiddle, rec.MiddleName)
}

// formatMessage picks the console message for a failed codec read: the
// format-specific text for malformed content, a read failure otherwise
func (c *Controller) formatMessage(err error, invalid string) string {
	if filemanager.Kind(err) == filemanager.KindInvalidFormat {
		return invalid
	}
	return i18n.MsgReadFailed
}

// report logs err and prints the localized failure message
func (c *Controller) report(component string, err error, key string, args ...any) {
	logger := util.GetLogger(component)
	logger.Debug().Err(err).Str("kind", string(filemanager.Kind(err))).Msg("Action failed")
	c.say(key, args...)
}
