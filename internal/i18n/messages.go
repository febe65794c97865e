package i18n

// Message keys. Each key is also the English text.
const (
	MsgChooseAction  = "Choose an action"
	MsgMainCreate    = "Create file (1)"
	MsgMainVolumes   = "Show volume information (2)"
	MsgMainSelect    = "Select file (3)"
	MsgMainExit      = "Exit (0)"
	MsgChoicePrompt  = ">> "
	MsgEnterNumber   = "Enter a number"
	MsgDirPrompt     = "File location (enter %s to use the default path, default %s): "
	MsgDirInvalid    = "Path %s is not valid"
	MsgNamePrompt    = "File name: "
	MsgNameInvalid   = "File name %s is not valid"
	MsgFileExists    = "File %s already exists"
	MsgFileMissing   = "File %s does not exist"
	MsgFileCreated   = "File created"
	MsgCreateFailed  = "An error occurred while creating the file"
	MsgSubWrite      = "Write a string to the file (1)"
	MsgSubPrint      = "Print the file (2)"
	MsgSubDelete     = "Delete the file (3)"
	MsgSubWriteJSON  = "Write a Person object to the file as JSON (4)"
	MsgSubPrintJSON  = "Deserialize the JSON file (5)"
	MsgSubWriteXML   = "Write a Person object to the file as XML (6)"
	MsgSubPrintXML   = "Deserialize the XML file (7)"
	MsgSubArchive    = "Archive the file as ZIP (8)"
	MsgSubAppend     = "Append a string to the file (9)"
	MsgSubInfo       = "Show file information (10)"
	MsgStringPrompt  = "String: "
	MsgStringWritten = "String written"
	MsgWriteFailed   = "Failed to write data to the file"
	MsgReadFailed    = "Failed to read the file"
	MsgDeleted       = "File deleted successfully"
	MsgDeleteFailed  = "Failed to delete the file"
	MsgNotJSON       = "The file is not a JSON file"
	MsgNotXML        = "The file is not an XML file"
	MsgBadJSON       = "The JSON file has an invalid structure"
	MsgBadStructure  = "The file has an invalid structure"
	MsgFirstName     = "First name: "
	MsgLastName      = "Last name: "
	MsgMiddleName    = "Middle name: "
	MsgRecordsSaved  = "Objects written successfully"
	MsgArchivePrompt = "Archive name: "
	MsgArchiveExists = "Failed to create file %s"
	MsgArchiveFailed = "Failed to archive the file"
	MsgArchived      = "File archived successfully"
	MsgVolumeName    = "Drive name: %s"
	MsgVolumeLabel   = "Volume label: %s"
	MsgVolumeFSType  = "File system type: %s"
	MsgVolumeSize    = "Disk size: %dmb"
	MsgUnknown       = "Could not be determined"
	MsgNoVolumes     = "No volumes found"
	MsgInfoPath      = "Path: %s"
	MsgInfoSize      = "Size: %d bytes"
	MsgInfoModified  = "Modified: %s"
	MsgInfoMime      = "MIME type: %s"
	MsgInfoCharset   = "Charset: %s"
	MsgInfoFailed    = "Failed to get file information"
	MsgPersonFirst   = "FirstName: %s"
	MsgPersonLast    = "LastName: %s"
	MsgPersonMiddle  = "MiddleName: %s"
)

// russian holds the translation of every key
var russian = map[string]string{
	MsgChooseAction:  "Выберите действие",
	MsgMainCreate:    "Создать файл (1)",
	MsgMainVolumes:   "Вывести информацию о дисках (2)",
	MsgMainSelect:    "Выбрать файл (3)",
	MsgMainExit:      "Выйти (0)",
	MsgChoicePrompt:  ">> ",
	MsgEnterNumber:   "Введите число",
	MsgDirPrompt:     "Расположение файла (введите %s, чтобы использовать путь по умолчанию, по умолчанию %s): ",
	MsgDirInvalid:    "Путь %s не валиден",
	MsgNamePrompt:    "Имя файла: ",
	MsgNameInvalid:   "Имя файла %s не валидно",
	MsgFileExists:    "Файл %s уже существует",
	MsgFileMissing:   "Файл %s не существует",
	MsgFileCreated:   "Файл создан",
	MsgCreateFailed:  "Произошла ошибка при создании файла",
	MsgSubWrite:      "Записать в файл строку (1)",
	MsgSubPrint:      "Вывести файл (2)",
	MsgSubDelete:     "Удалить файл (3)",
	MsgSubWriteJSON:  "Записать в файл объект Person в формате JSON (4)",
	MsgSubPrintJSON:  "Десериализовать JSON файл (5)",
	MsgSubWriteXML:   "Записать в файл объект Person в формате XML (6)",
	MsgSubPrintXML:   "Десериализовать XML файл (7)",
	MsgSubArchive:    "Архивировать файл в формате ZIP (8)",
	MsgSubAppend:     "Дописать в файл строку (9)",
	MsgSubInfo:       "Вывести информацию о файле (10)",
	MsgStringPrompt:  "Строка: ",
	MsgStringWritten: "Строка записана",
	MsgWriteFailed:   "Не удалось записать данные в файл",
	MsgReadFailed:    "Не удалось прочитать файл",
	MsgDeleted:       "Файл успешно удален",
	MsgDeleteFailed:  "Не удалось удалить файл",
	MsgNotJSON:       "Файл не является JSON файлом",
	MsgNotXML:        "Файл не является XML файлом",
	MsgBadJSON:       "JSON файл имеет неверную структуру",
	MsgBadStructure:  "Файл имеет неверную структуру",
	MsgFirstName:     "Имя: ",
	MsgLastName:      "Фамилия: ",
	MsgMiddleName:    "Отчество: ",
	MsgRecordsSaved:  "Объекты успешно записаны",
	MsgArchivePrompt: "Имя архива: ",
	MsgArchiveExists: "Не удалось создать файл %s",
	MsgArchiveFailed: "Не удалось архивировать файл",
	MsgArchived:      "Файл успешно архивирован",
	MsgVolumeName:    "Название диска: %s",
	MsgVolumeLabel:   "Метка тома: %s",
	MsgVolumeFSType:  "Тип файловой системы: %s",
	MsgVolumeSize:    "Размер диска: %dmb",
	MsgUnknown:       "Не удалось определить",
	MsgNoVolumes:     "Диски не найдены",
	MsgInfoPath:      "Путь: %s",
	MsgInfoSize:      "Размер: %d байт",
	MsgInfoModified:  "Изменён: %s",
	MsgInfoMime:      "MIME-тип: %s",
	MsgInfoCharset:   "Кодировка: %s",
	MsgInfoFailed:    "Не удалось получить информацию о файле",
	MsgPersonFirst:   "FirstName: %s",
	MsgPersonLast:    "LastName: %s",
	MsgPersonMiddle:  "MiddleName: %s",
}
