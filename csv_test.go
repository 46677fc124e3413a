package xlsxfit

import (
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestGetEncoding(t *testing.T) {
	for _, name := range []string{"", "utf-8", "UTF8"} {
		if enc, err := GetEncoding(name); err != nil || enc != nil {
			t.Errorf("%q: got %v, %v; want nil, nil", name, enc, err)
		}
	}
	if enc, err := GetEncoding("iso-8859-2"); err != nil || enc == nil {
		t.Errorf("iso-8859-2: got %v, %v", enc, err)
	}
	if _, err := GetEncoding("no-such-charset"); err == nil {
		t.Error("want error for unknown charset")
	}
}

func TestOpenCsvSniffsSeparator(t *testing.T) {
	for _, tc := range []struct {
		name, data string
		want       []string
	}{
		{"comma", "a,b\n1,2\n", []string{"a", "b"}},
		{"semicolon", "a;b\n1;2\n", []string{"a", "b"}},
		{"tab", "a\tb\n1\t2\n", []string{"a", "b"}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			fn := filepath.Join(t.TempDir(), "t.csv")
			if err := os.WriteFile(fn, []byte(tc.data), 0o644); err != nil {
				t.Fatal(err)
			}
			cr, err := OpenCsv(fn, "")
			if err != nil {
				t.Fatal(err)
			}
			defer cr.Close()
			var rows int
			for {
				row, err := cr.Read()
				if err == io.EOF {
					break
				}
				if err != nil {
					t.Fatal(err)
				}
				rows++
				if len(row) != len(tc.want) {
					t.Fatalf("row %d: got %d fields (%q), want %d", rows, len(row), row, len(tc.want))
				}
			}
			if rows != 2 {
				t.Errorf("got %d rows, want 2", rows)
			}
		})
	}
}
