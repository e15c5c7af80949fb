package export

import (
	"context"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/integra/explorer/internal/storage"
	"github.com/integra/explorer/test/testdb"
	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var exportTime = time.Date(2024, 7, 4, 0, 0, 0, 0, time.UTC)

func seededExporter(t *testing.T, batchSize int, uploader Uploader) *Exporter {
	broken := testdb.Record(137, 1, "0x"+strings.Repeat("f", 64), exportTime, "")
	broken.ReceiptData = "[]"

	store, builder := testdb.NewStore(t,
		testdb.Record(137, 1, "0x"+strings.Repeat("1", 64), exportTime, `{"integraHash":"0xabc","method":"registerDocument"}`),
		testdb.Record(137, 2, "0x"+strings.Repeat("2", 64), exportTime.Add(time.Second), ""),
		testdb.Record(137, 3, "0x"+strings.Repeat("3", 64), exportTime.Add(2*time.Second), ""),
		testdb.Record(80002, 3, "0x"+strings.Repeat("4", 64), exportTime.Add(3*time.Second), ""),
		broken,
	)
	e := NewExporter(storage.IStorage{MainStorage: store, Builder: builder}, t.TempDir(), batchSize, uploader)
	e.now = func() time.Time { return exportTime }
	return e
}

func TestExport_WritesAllPages(t *testing.T) {
	e := seededExporter(t, 2, nil)
	chain := uint64(137)

	result, err := e.Export(context.Background(), storage.QueryFilter{ChainId: &chain})
	require.NoError(t, err)
	assert.Equal(t, 3, result.Rows)
	assert.Equal(t, 1, result.Skipped)
	assert.False(t, result.Uploaded)
	assert.True(t, strings.HasSuffix(result.Path, "transactions_137_1720051200.parquet"))

	rows, err := parquet.ReadFile[ParquetTransaction](result.Path)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, uint64(3), rows[0].BlockNumber)
	assert.Equal(t, uint64(1), rows[2].BlockNumber)
	assert.Equal(t, "0xabc", rows[2].IntegraHash)
	assert.Equal(t, "registerDocument", rows[2].Method)
	assert.Equal(t, "success", rows[2].Status)
	assert.Equal(t, exportTime.Unix(), rows[2].BlockTimestamp)
}

type recordingUploader struct {
	key      string
	metadata map[string]string
	body     []byte
}

func (u *recordingUploader) Upload(_ context.Context, file *os.File, key string, metadata map[string]string) error {
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return err
	}
	body, err := io.ReadAll(file)
	if err != nil {
		return err
	}
	u.key, u.metadata, u.body = key, metadata, body
	return nil
}

func TestExport_UploadsAndRemovesLocalFile(t *testing.T) {
	uploader := &recordingUploader{}
	e := seededExporter(t, 0, uploader)

	result, err := e.Export(context.Background(), storage.QueryFilter{})
	require.NoError(t, err)
	assert.True(t, result.Uploaded)
	assert.Equal(t, "transactions_all_1720051200.parquet", result.Key)
	assert.Equal(t, uploader.key, result.Key)
	assert.Equal(t, "4", uploader.metadata["rows"])
	assert.Equal(t, "all", uploader.metadata["chain_id"])
	assert.Equal(t, "PAR1", string(uploader.body[:4]))

	_, err = os.Stat(result.Path)
	assert.True(t, os.IsNotExist(err))
}

func TestFileChecksum(t *testing.T) {
	file, err := os.CreateTemp(t.TempDir(), "checksum")
	require.NoError(t, err)
	defer file.Close()
	_, err = file.WriteString("hello")
	require.NoError(t, err)

	sum, err := fileChecksum(file)
	require.NoError(t, err)
	assert.Equal(t, "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824", sum)

	pos, err := file.Seek(0, io.SeekCurrent)
	require.NoError(t, err)
	assert.Equal(t, int64(0), pos)
}
