package resumes

import "time"

type Resume struct {
	ID            string    `json:"id"`
	UserID        string    `json:"userId"`
	FileName      string    `json:"fileName"`
	StorageKey    string    `json:"-"`
	ExtractedText string    `json:"-"`
	UploadDate    time.Time `json:"uploadDate"`
}
