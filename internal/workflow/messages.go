package workflow

// Operator-facing status messages. The loading and terminal strings are part
// of the presentation contract and must not drift.
const (
	MsgStarting   = "Starting process..."
	MsgUploading  = "Uploading files..."
	MsgGenerating = "Generating certificates..."
	MsgSending    = "Sending emails..."
	MsgSuccess    = "All operations completed successfully!"

	MsgUploadFailed   = "Failed to upload files"
	MsgGenerateFailed = "Failed to generate certificates"
	MsgSendFailed     = "Failed to send emails"
	MsgDownloadFailed = "Failed to download certificates"
	MsgSenderRequired = "Sender email is required"
	MsgFilesRequired  = "Participants and template files are required"
	MsgGeneratedOnly  = "Certificates generated successfully!"
)
