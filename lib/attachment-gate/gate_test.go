package attachmentgate

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const mb = 1024 * 1024

func TestValidate(t *testing.T) {
	t.Run(`valid batch passes`, func(t *testing.T) {
		err := Validate([]FileInfo{
			{Name: "bao_gia.pdf", Size: 2 * mb},
			{Name: "du_toan.xlsx", Size: 5 * mb},
		}, 0)
		require.Nil(t, err)
	})

	t.Run(`extension allow list`, func(t *testing.T) {
		err := Validate([]FileInfo{{Name: "script.exe", Size: 1}}, 0)
		require.Equal(t, ErrUnsupportedType, err)

		err = Validate([]FileInfo{{Name: "noext", Size: 1}}, 0)
		require.Equal(t, ErrUnsupportedType, err)

		// case-insensitive
		err = Validate([]FileInfo{{Name: "SCAN.PDF", Size: 1}}, 0)
		require.Nil(t, err)
	})

	t.Run(`five files refused, limit is four`, func(t *testing.T) {
		files := make([]FileInfo, 5)
		for i := range files {
			files[i] = FileInfo{Name: "f.pdf", Size: 1}
		}
		require.Equal(t, ErrTooManyFiles, Validate(files, 0))
	})

	t.Run(`existing files count against the limit`, func(t *testing.T) {
		files := []FileInfo{{Name: "a.pdf", Size: 1}, {Name: "b.pdf", Size: 1}}
		require.Nil(t, Validate(files, 2))
		require.Equal(t, ErrTooManyFiles, Validate(files, 3))
	})

	t.Run(`single file over 10MB refused`, func(t *testing.T) {
		err := Validate([]FileInfo{{Name: "a.pdf", Size: 11 * mb}}, 0)
		require.Equal(t, ErrFileTooLarge, err)
	})

	t.Run(`batch over 20MB refused`, func(t *testing.T) {
		err := Validate([]FileInfo{
			{Name: "a.pdf", Size: 8 * mb},
			{Name: "b.pdf", Size: 7 * mb},
			{Name: "c.pdf", Size: 6 * mb},
		}, 0)
		require.Equal(t, ErrTotalSizeExceeded, err)
	})

	t.Run(`extension checked before count`, func(t *testing.T) {
		files := []FileInfo{
			{Name: "a.pdf", Size: 1}, {Name: "b.pdf", Size: 1},
			{Name: "c.pdf", Size: 1}, {Name: "d.pdf", Size: 1},
			{Name: "evil.bat", Size: 1},
		}
		require.Equal(t, ErrUnsupportedType, Validate(files, 0))
	})

	t.Run(`count checked before sizes`, func(t *testing.T) {
		files := []FileInfo{
			{Name: "a.pdf", Size: 11 * mb}, {Name: "b.pdf", Size: 1},
			{Name: "c.pdf", Size: 1}, {Name: "d.pdf", Size: 1},
			{Name: "e.pdf", Size: 1},
		}
		require.Equal(t, ErrTooManyFiles, Validate(files, 0))
	})

	t.Run(`idempotent on the same batch`, func(t *testing.T) {
		files := []FileInfo{{Name: "a.pdf", Size: 9 * mb}, {Name: "b.docx", Size: 9 * mb}}
		first := Validate(files, 1)
		second := Validate(files, 1)
		require.Equal(t, first, second)
	})
}
