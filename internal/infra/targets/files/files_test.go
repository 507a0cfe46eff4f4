package files

import (
	"os"
	"testing"
)

func TestOpenModes(t *testing.T) {
	dir := t.TempDir() + "/nested"

	f, fresh, err := Open(dir, "item", "csv", "create")
	if err != nil {
		t.Fatal(err)
	}
	if !fresh {
		t.Fatal("new file should be fresh")
	}
	f.WriteString("a\n")
	f.Close()

	f, fresh, err = Open(dir, "item", "csv", "append")
	if err != nil {
		t.Fatal(err)
	}
	if fresh {
		t.Fatal("appending to a non-empty file is not fresh")
	}
	f.WriteString("b\n")
	f.Close()

	got, _ := os.ReadFile(Path(dir, "item", "csv"))
	if string(got) != "a\nb\n" {
		t.Fatalf("unexpected content %q", got)
	}

	f, fresh, err = Open(dir, "item", "csv", "truncate")
	if err != nil {
		t.Fatal(err)
	}
	f.Close()
	got, _ = os.ReadFile(Path(dir, "item", "csv"))
	if !fresh || len(got) != 0 {
		t.Fatalf("truncate should empty the file, got %q", got)
	}

	if _, _, err := Open(dir, "item", "csv", "upsert"); err == nil {
		t.Fatal("expected error for unknown mode")
	}
}
