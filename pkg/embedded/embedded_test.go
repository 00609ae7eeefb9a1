package embedded

import (
	"testing"
	"testing/fstest"
)

const notInitialized = "embedded package not initialized, call Init() first"

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"data/levels/level1.yaml": {Data: []byte("id: level1\n")},
		"data/levels/level2.yaml": {Data: []byte("id: level2\n")},
		"data/levels/map.png":     {Data: []byte{0x89, 'P', 'N', 'G'}},
	}
}

// TestIsInitialized 测试初始化状态检测
func TestIsInitialized(t *testing.T) {
	Init(nil)
	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false before Init()")
	}

	Init(testFS())
	defer Init(nil)
	if !IsInitialized() {
		t.Error("Expected IsInitialized() to return true after Init()")
	}
}

// TestNotInitialized 未初始化时所有访问函数都返回同一个错误
func TestNotInitialized(t *testing.T) {
	Init(nil)

	calls := map[string]func() error{
		"Open":     func() error { _, err := Open("data/levels/level1.yaml"); return err },
		"ReadFile": func() error { _, err := ReadFile("data/levels/level1.yaml"); return err },
		"Glob":     func() error { _, err := Glob("data/levels/*.yaml"); return err },
		"ReadDir":  func() error { _, err := ReadDir("data/levels"); return err },
		"Sub":      func() error { _, err := Sub("data/levels"); return err },
		"FS":       func() error { _, err := FS(); return err },
	}
	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			err := call()
			if err == nil || err.Error() != notInitialized {
				t.Errorf("%s() error = %v, want %q", name, err, notInitialized)
			}
		})
	}

	if Exists("data/levels/level1.yaml") {
		t.Error("Expected Exists() to return false before Init()")
	}
}

// TestInvalidPrefix 路径必须以 data/ 开头
func TestInvalidPrefix(t *testing.T) {
	Init(testFS())
	defer Init(nil)

	_, err := ReadFile("assets/test.png")
	want := "unknown resource path prefix: assets/test.png (must start with 'data/')"
	if err == nil || err.Error() != want {
		t.Errorf("ReadFile() error = %v, want %q", err, want)
	}
}

func TestReadAccess(t *testing.T) {
	Init(testFS())
	defer Init(nil)

	data, err := ReadFile("./data/levels/level1.yaml")
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	if string(data) != "id: level1\n" {
		t.Errorf("unexpected content %q", data)
	}

	if !Exists("data/levels/map.png") || Exists("data/levels/missing.yaml") {
		t.Error("Exists() returned wrong result")
	}

	matches, err := Glob("data/levels/*.yaml")
	if err != nil {
		t.Fatalf("Glob() failed: %v", err)
	}
	if len(matches) != 2 {
		t.Errorf("Glob() = %v, want 2 matches", matches)
	}

	entries, err := ReadDir("data/levels")
	if err != nil {
		t.Fatalf("ReadDir() failed: %v", err)
	}
	if len(entries) != 3 {
		t.Errorf("ReadDir() returned %d entries, want 3", len(entries))
	}

	sub, err := Sub("data/levels")
	if err != nil {
		t.Fatalf("Sub() failed: %v", err)
	}
	if _, err := sub.Open("level2.yaml"); err != nil {
		t.Errorf("sub FS Open() failed: %v", err)
	}

	info, err := Stat("data/levels/level2.yaml")
	if err != nil {
		t.Fatalf("Stat() failed: %v", err)
	}
	if info.Size() != int64(len("id: level2\n")) {
		t.Errorf("Stat() size = %d", info.Size())
	}
}
