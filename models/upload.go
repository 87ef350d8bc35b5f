package models

// PresignedURL wraps a single time-limited URL returned by the server for a
// direct blob transfer that needs no additional auth headers.
type PresignedURL struct {
	// URL is the presigned transfer URL.
	URL string `json:"url"`
}

// UploadTicket is the server's answer to an upload-URL request for an input
// or receipt blob: where to PUT the bytes and the identifier the stored blob
// will be known by afterwards.
type UploadTicket struct {
	// URL is the presigned PUT URL for the blob.
	URL string `json:"url"`

	// UUID is the server-generated identifier of the stored blob.
	UUID string `json:"uuid"`
}

// ImageUploadKind tags the two variants of [ImageUploadOutcome].
type ImageUploadKind int

const (
	// ImageExists means the image is already stored server-side and no
	// upload is needed.
	ImageExists ImageUploadKind = iota + 1

	// ImageNew means the image is unknown to the server; the outcome
	// carries a presigned URL to PUT it to.
	ImageNew
)

// ImageUploadOutcome is the result of an image upload-URL check. Consumers
// must switch on Kind exhaustively; the zero Kind marks a contract violation
// and is never produced by a well-formed server response.
type ImageUploadOutcome struct {
	// Kind selects the variant.
	Kind ImageUploadKind

	// URL is the presigned PUT URL. Set only when Kind is ImageNew.
	URL string
}
