package library

import (
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/pkg/errors"
	"github.com/qlquery/qlquery/utils"
	"github.com/ugorji/go/codec"
	"gopkg.in/yaml.v3"
)

// Format is encoding of the song dump
type Format string

// Supported dump formats
const (
	FormatJSON    Format = "json"
	FormatYAML    Format = "yaml"
	FormatMsgpack Format = "msgpack"
)

var formatExtensions = map[string]Format{
	".json":    FormatJSON,
	".yaml":    FormatYAML,
	".yml":     FormatYAML,
	".msgpack": FormatMsgpack,
	".mp":      FormatMsgpack,
}

// DetectFormat picks dump format by file name (compression extension
// is skipped), ok is false for unknown extensions
func DetectFormat(name string) (format Format, ok bool) {
	name = strings.TrimSuffix(name, utils.CompressionExtension(name))
	format, ok = formatExtensions[strings.ToLower(filepath.Ext(name))]
	return
}

func msgpackHandle() *codec.MsgpackHandle {
	handle := &codec.MsgpackHandle{}
	handle.RawToString = true
	handle.MapType = reflect.TypeOf(map[string]interface{}(nil))
	return handle
}

// Decode reads songs in the format from r
func Decode(r io.Reader, format Format) ([]*Song, error) {
	var (
		records []map[string]interface{}
		err     error
	)

	switch format {
	case FormatYAML:
		err = yaml.NewDecoder(r).Decode(&records)
		if err == io.EOF {
			err = nil
		}
	case FormatMsgpack:
		err = codec.NewDecoder(r, msgpackHandle()).Decode(&records)
	default:
		err = codec.NewDecoder(r, jsonHandle).Decode(&records)
	}
	if err != nil {
		return nil, err
	}

	songs := make([]*Song, 0, len(records))
	for i, fields := range records {
		song, err := NewSong(fields)
		if err != nil {
			return nil, errors.Wrapf(err, "record #%d", i)
		}
		songs = append(songs, song)
	}

	return songs, nil
}

// Encode writes songs in the format to w
func Encode(w io.Writer, format Format, songs []*Song) error {
	records := make([]map[string]interface{}, len(songs))
	for i := range songs {
		records[i] = songs[i].Fields()
	}

	switch format {
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		if err := encoder.Encode(records); err != nil {
			return err
		}
		return encoder.Close()
	case FormatMsgpack:
		return codec.NewEncoder(w, msgpackHandle()).Encode(records)
	}

	handle := &codec.JsonHandle{}
	handle.Indent = 2
	return codec.NewEncoder(w, handle).Encode(records)
}

// LoadFile reads dump of songs, format is picked by extension (JSON by default),
// compressed files are uncompressed on the fly
func LoadFile(path string) ([]*Song, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to load %s", path)
	}
	defer file.Close()

	reader, err := utils.UncompressReader(path, file)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to load %s", path)
	}
	defer reader.Close()

	format, ok := DetectFormat(path)
	if !ok {
		format = FormatJSON
	}

	songs, err := Decode(reader, format)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to load %s", path)
	}
	return songs, nil
}

// SaveFile writes dump of songs, format and compression are picked by extension
func SaveFile(path string, songs []*Song) (err error) {
	format, ok := DetectFormat(path)
	if !ok {
		format = FormatJSON
	}

	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "unable to save %s", path)
	}
	defer func() {
		if closeErr := file.Close(); err == nil && closeErr != nil {
			err = errors.Wrapf(closeErr, "unable to save %s", path)
		}
	}()

	writer, err := utils.CompressWriter(path, file)
	if err != nil {
		return errors.Wrapf(err, "unable to save %s", path)
	}

	if err = Encode(writer, format, songs); err != nil {
		_ = writer.Close()
		return errors.Wrapf(err, "unable to save %s", path)
	}

	if err = writer.Close(); err != nil {
		return errors.Wrapf(err, "unable to save %s", path)
	}
	return nil
}
