package datacraft

import (
	"github.com/go-viper/mapstructure/v2"
)

// RecordEntries parses the raw spec and decodes the amount of generated records into values of type T.
// Field values are converted to the target types when possible, like a "5" into an int field.
// Struct fields are matched by the "datacraft" tag, or by name.
func RecordEntries[T any](raw any, iterations int64, options ...GenerateOption) ([]T, error) {
	entries, err := Entries(raw, iterations, options...)
	if err != nil {
		return nil, err
	}
	return DecodeRecords[T](entries)
}

// DecodeRecords decodes generated records into values of type T.
func DecodeRecords[T any](records []map[string]any) ([]T, error) {
	ret := make([]T, 0, len(records))
	for _, record := range records {
		var item T
		decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			WeaklyTypedInput: true,
			TagName:          "datacraft",
			Result:           &item,
		})
		if err != nil {
			return nil, err
		}
		if err := decoder.Decode(record); err != nil {
			return nil, NewSpecErrorf("error decoding record: %w", err)
		}
		ret = append(ret, item)
	}
	return ret, nil
}
