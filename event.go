package main

import "fmt"

type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("event is missing required field '%s'", e.Field)
}

// ExtractMemeAttributes reads the object key and size from the first record
// of the event. Any further records are ignored.
func ExtractMemeAttributes(event S3ObjectCreatedEvent) (MemeAttributes, error) {
	if len(event.Records) == 0 {
		return MemeAttributes{}, &MissingFieldError{Field: "Records"}
	}
	object := event.Records[0].S3.Object
	if object.Key == nil {
		return MemeAttributes{}, &MissingFieldError{Field: "s3.object.key"}
	}
	if object.Size == nil {
		return MemeAttributes{}, &MissingFieldError{Field: "s3.object.size"}
	}

	return MemeAttributes{
		Filename:    *object.Key,
		ContentSize: *object.Size,
	}, nil
}
