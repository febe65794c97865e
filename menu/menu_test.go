package menu

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/zip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kchaow/filemanager"
	"github.com/kchaow/filemanager/codec"
	"github.com/kchaow/filemanager/internal/i18n"
	"github.com/kchaow/filemanager/internal/mocks"
	"github.com/kchaow/filemanager/volume"
)

// session runs a Controller over the given input lines with English messages
func session(t *testing.T, dir string, volumes VolumeLister, lines ...string) (string, *Controller, error) {
	t.Helper()

	printer, err := i18n.NewPrinter("en")
	require.NoError(t, err)
	if volumes == nil {
		volumes = staticVolumes{}
	}

	var out bytes.Buffer
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	c := NewController(in, &out, dir, printer, volumes)
	err = c.Run()
	return out.String(), c, err
}

type staticVolumes []filemanager.VolumeInfo

func (v staticVolumes) List() []filemanager.VolumeInfo { return v }

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestRun_ExitOnZero(t *testing.T) {
	t.Parallel()

	out, c, err := session(t, t.TempDir(), staticVolumes{}, "0")

	require.NoError(t, err)
	assert.Equal(t, StateExit, c.State())
	assert.Contains(t, out, "Choose an action\nCreate file (1)\nShow volume information (2)\nSelect file (3)\nExit (0)\n>> ")
}

func TestRun_AnyOtherNumberExits(t *testing.T) {
	t.Parallel()

	out, _, err := session(t, t.TempDir(), staticVolumes{}, "42", "1")

	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out, "Choose an action"), "second line is never read")
}

func TestRun_NonNumericReprompts(t *testing.T) {
	t.Parallel()

	out, _, err := session(t, t.TempDir(), staticVolumes{}, "abc", "", " 0 ")

	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "Enter a number"))
}

func TestRun_EOFExits(t *testing.T) {
	t.Parallel()

	printer, err := i18n.NewPrinter("en")
	require.NoError(t, err)
	var out bytes.Buffer
	c := NewController(strings.NewReader(""), &out, t.TempDir(), printer, staticVolumes{})

	require.NoError(t, c.Run())
	assert.Equal(t, StateExit, c.State())
}

func TestRun_EOFInsidePrompt(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	out, c, err := session(t, dir, staticVolumes{}, "1", dir)

	require.NoError(t, err)
	assert.Equal(t, StateExit, c.State())
	assert.Contains(t, out, "File name: ")
}

func TestCreate_DefaultDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	out, _, err := session(t, dir, staticVolumes{}, "1", "-", "a.json", "0")

	require.NoError(t, err)
	assert.Contains(t, out, "File location (enter - to use the default path, default "+dir+"): ")
	assert.Contains(t, out, "File created")
	info, err := os.Stat(filepath.Join(dir, "a.json"))
	require.NoError(t, err)
	assert.Zero(t, info.Size())
}

func TestCreate_RepromptsUntilValid(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	missing := filepath.Join(dir, "nope")
	writeFile(t, filepath.Join(dir, "a.txt"), "original")

	out, _, err := session(t, t.TempDir(), staticVolumes{},
		"1", missing, dir, "bad|name", "a.txt", "b.txt", "0")

	require.NoError(t, err)
	assert.Contains(t, out, "Path "+missing+" is not valid")
	assert.Contains(t, out, "File name bad|name is not valid")
	assert.Contains(t, out, "File a.txt already exists")
	assert.Contains(t, out, "File created")

	data, err := os.ReadFile(filepath.Join(dir, "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "original", string(data))
	assert.FileExists(t, filepath.Join(dir, "b.txt"))
}

func TestVolumes(t *testing.T) {
	t.Parallel()

	volumes := staticVolumes{
		{RootIdentifier: "/", DisplayLabel: "/dev/sda1", FilesystemType: "ext4", TotalSizeMB: 512},
		{RootIdentifier: "/mnt", DisplayLabel: "/dev/sdb1", FilesystemType: "", TotalSizeMB: 0},
	}
	out, _, err := session(t, t.TempDir(), volumes, "2", "0")

	require.NoError(t, err)
	assert.Contains(t, out, "Drive name: /\nVolume label: /dev/sda1\nFile system type: ext4\nDisk size: 512mb\n\n")
	assert.Contains(t, out, "Drive name: /mnt\nVolume label: /dev/sdb1\nFile system type: Could not be determined\nDisk size: 0mb\n\n")
	assert.Equal(t, 2, strings.Count(out, "Choose an action"), "returns to the main menu")
}

func TestVolumes_Platform(t *testing.T) {
	t.Parallel()

	platform := &mocks.MockVolumePlatform{}
	platform.On("Roots").Return([]string{}, nil)

	out, _, err := session(t, t.TempDir(), volume.NewInspector(platform), "2", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "No volumes found")
	platform.AssertExpectations(t)
}

func TestSelect_MissingFileReprompts(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "here.txt"), "")

	out, c, err := session(t, dir, staticVolumes{}, "3", "-", "gone.txt", "here.txt", "0", "0")

	require.NoError(t, err)
	assert.Contains(t, out, "File gone.txt does not exist")
	assert.Contains(t, out, "Archive the file as ZIP (8)\nAppend a string to the file (9)\nShow file information (10)\n")
	assert.Equal(t, StateExit, c.State())
}

func TestSubmenu_UnknownReturnsToMain(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "f.txt"), "keep")

	out, _, err := session(t, dir, staticVolumes{}, "3", "-", "f.txt", "99", "0")

	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(out, "Choose an action"))
	data, _ := os.ReadFile(filepath.Join(dir, "f.txt"))
	assert.Equal(t, "keep", string(data))
}

func TestWriteAppendPrint(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "f.txt"), "old content")

	out, _, err := session(t, dir, staticVolumes{},
		"3", "-", "f.txt", "1", "hello",
		"3", "-", "f.txt", "9", " world",
		"3", "-", "f.txt", "2",
		"0")

	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "String written"))
	data, err := os.ReadFile(filepath.Join(dir, "f.txt"))
	require.NoError(t, err)
	assert.Equal(t, "helloworld", string(data), "input is trimmed")
	assert.Contains(t, out, ">> helloworld\n")
}

func TestWrite_IOFailureEndsSession(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))

	_, c, err := session(t, dir, staticVolumes{}, "3", "-", "sub", "1", "text", "0")

	require.Error(t, err)
	assert.ErrorIs(t, err, filemanager.ErrIO)
	assert.Equal(t, StateExit, c.State())
}

func TestAppend_IOFailureIsReported(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))

	out, _, err := session(t, dir, staticVolumes{}, "3", "-", "sub", "9", "text", "0")

	require.NoError(t, err)
	assert.Contains(t, out, "Failed to write data to the file")
}

func TestDelete(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "d.txt")
	writeFile(t, path, "")

	out, _, err := session(t, dir, staticVolumes{}, "3", "-", "d.txt", "3", "0")

	require.NoError(t, err)
	assert.Contains(t, out, "File deleted successfully")
	assert.NoFileExists(t, path)
}

func TestJSON_CreateWritePrint(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	out, _, err := session(t, dir, staticVolumes{},
		"1", "-", "a.json",
		"3", "-", "a.json", "4", "Ann", "Lee", "",
		"3", "-", "a.json", "4", "Bob", "Ray", "J",
		"3", "-", "a.json", "5",
		"0")

	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "Objects written successfully"))
	assert.Contains(t, out, "FirstName: Ann\nLastName: Lee\nMiddleName: \n\nFirstName: Bob\nLastName: Ray\nMiddleName: J\n\n")

	records, err := codec.ReadJSON(filepath.Join(dir, "a.json"))
	require.NoError(t, err)
	assert.Equal(t, []filemanager.PersonRecord{
		{FirstName: "Ann", LastName: "Lee", MiddleName: ""},
		{FirstName: "Bob", LastName: "Ray", MiddleName: "J"},
	}, records)
}

func TestJSON_WrongExtension(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "note.txt"), "")

	out, _, err := session(t, dir, staticVolumes{},
		"3", "-", "note.txt", "4",
		"3", "-", "note.txt", "5",
		"0")

	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "The file is not a JSON file"))
	assert.NotContains(t, out, "First name: ")
}

func TestJSON_MalformedAbortsBeforePrompt(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	writeFile(t, path, "{oops")

	out, _, err := session(t, dir, staticVolumes{},
		"3", "-", "bad.json", "4",
		"3", "-", "bad.json", "5",
		"0")

	require.NoError(t, err)
	assert.Contains(t, out, i18n.MsgBadStructure+"\n")
	assert.Contains(t, out, i18n.MsgBadJSON+"\n")
	assert.NotContains(t, out, "First name: ")
	data, _ := os.ReadFile(path)
	assert.Equal(t, "{oops", string(data))
}

func TestJSON_WriteThroughSymlink(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	data := filepath.Join(dir, "data.json")
	writeFile(t, data, "[]")
	if err := os.Symlink(data, filepath.Join(dir, "people.json")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	out, _, err := session(t, dir, staticVolumes{},
		"3", "-", "people.json", "4", "Ann", "Lee", "",
		"0")

	require.NoError(t, err)
	assert.Contains(t, out, "Objects written successfully")
	records, err := codec.ReadJSON(data)
	require.NoError(t, err)
	assert.Equal(t, []filemanager.PersonRecord{{FirstName: "Ann", LastName: "Lee"}}, records)
}

func TestXML_WritePrint(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "p.xml"), "")

	out, _, err := session(t, dir, staticVolumes{},
		"3", "-", "p.xml", "6", "Анна", "Ли", "",
		"3", "-", "p.xml", "7",
		"0")

	require.NoError(t, err)
	assert.Contains(t, out, "First name: Last name: Middle name: Objects written successfully")
	assert.Contains(t, out, "FirstName: Анна\nLastName: Ли\nMiddleName: \n")
}

func TestXML_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "p.json"), "")
	writeFile(t, filepath.Join(dir, "bad.xml"), "<Animal/>")

	out, _, err := session(t, dir, staticVolumes{},
		"3", "-", "p.json", "6",
		"3", "-", "p.json", "7",
		"3", "-", "bad.xml", "7",
		"0")

	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "The file is not an XML file"))
	assert.Contains(t, out, "The file has an invalid structure")
}

func TestArchive(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "note.txt"), "0123456789")
	zipPath := filepath.Join(dir, "backup.zip")

	out, _, err := session(t, dir, staticVolumes{},
		"3", "-", "note.txt", "8", "backup",
		"3", "-", "note.txt", "8", "backup",
		"0")

	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out, "File archived successfully"))
	assert.Contains(t, out, "Failed to create file "+zipPath)

	zr, err := zip.OpenReader(zipPath)
	require.NoError(t, err)
	defer zr.Close()
	require.Len(t, zr.File, 1)
	assert.Equal(t, "note.txt", zr.File[0].Name)
}

func TestFileInfo(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "info.txt")
	writeFile(t, path, "plain text\n")

	out, _, err := session(t, dir, staticVolumes{}, "3", "-", "info.txt", "10", "0")

	require.NoError(t, err)
	assert.Contains(t, out, "Path: "+path+"\n")
	assert.Contains(t, out, "Size: 11 bytes\n")
	assert.Contains(t, out, "MIME type: text/plain")
	assert.Contains(t, out, "Charset: ")
}

func TestRussianConsole(t *testing.T) {
	t.Parallel()

	printer, err := i18n.NewPrinter("ru")
	require.NoError(t, err)
	var out bytes.Buffer

	c := NewController(strings.NewReader("x\n0\n"), &out, t.TempDir(), printer, staticVolumes{})
	require.NoError(t, c.Run())

	assert.Contains(t, out.String(), "Выберите действие\nСоздать файл (1)\n")
	assert.Contains(t, out.String(), "Введите число")
}

func TestParseMainAction(t *testing.T) {
	t.Parallel()

	tests := map[int]MainAction{
		0: MainExit, 1: MainCreate, 2: MainVolumes, 3: MainSelect, 4: MainExit, -1: MainExit,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseMainAction(in), "input %d", in)
	}
}

func TestParseFileAction(t *testing.T) {
	t.Parallel()

	assert.Equal(t, FileBack, ParseFileAction(0))
	assert.Equal(t, FileWrite, ParseFileAction(1))
	assert.Equal(t, FileArchive, ParseFileAction(8))
	assert.Equal(t, FileInfo, ParseFileAction(10))
	assert.Equal(t, FileBack, ParseFileAction(11))
	assert.Equal(t, FileBack, ParseFileAction(-3))
	assert.Equal(t, "write-json", FileWriteJSON.String())
	assert.Equal(t, "Exit", StateExit.String())
}
