package errors

// Error message constants for the rigby application
const (
	// File processing errors
	ErrMsgFailedToReadFile   = "failed to read file"
	ErrMsgFailedToParseFile  = "failed to parse file"
	ErrMsgFailedToWriteFile  = "failed to write file"
	ErrMsgFailedToRenderDiff = "failed to render diff"

	// Path processing errors
	ErrMsgFailedToCheckPath    = "failed to check path"
	ErrMsgFailedToFindPyFiles  = "failed to find Python files in directory"
	ErrMsgFilesFailedToProcess = "%d files failed to process"
	ErrMsgFilesWouldChange     = "%d files would be reformatted"

	// Configuration errors
	ErrMsgConfigExists = "configuration file already exists"

	// Info/warning messages
	WarnMsgConfigFallback  = "%s; using default configuration"
	WarnMsgNoPaths         = "No paths provided. Using current directory."
	InfoMsgNoPyFilesFound  = "No Python files found in: %s"
	InfoMsgProcessedFile   = "Cleaned: %s"
	InfoMsgWouldChange     = "Would reformat: %s"
	InfoMsgErrorProcessing = "Error processing %s: %v"
	InfoMsgAllClean        = "All files are correctly formatted!"
	InfoMsgModifiedCount   = "\n%d files reformatted"
	InfoMsgCheckCount      = "\n%d files would be reformatted"
	InfoMsgErrorCount      = "\n%d files had errors"
	InfoMsgConfigCreated   = "Configuration file created!\nEdit .rigby.toml to customize formatting rules.\nYou can also add settings to pyproject.toml under [tool.rigby]."
)
