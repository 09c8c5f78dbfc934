package cmd

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

func TestExtensionMechanism(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping binary build in short mode")
	}
	tempDir := t.TempDir()

	helloSource := fmt.Sprintf(`
package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Printf("%s=%%s\n", os.Getenv("%s"))
	fmt.Printf("%s=%%s\n", os.Getenv("%s"))
	fmt.Printf("%s=%%s\n", os.Getenv("%s"))
	fmt.Printf("args=%%v\n", os.Args[1:])
}
`, EnvInventoryFile, EnvInventoryFile, EnvCurrency, EnvCurrency, EnvVerbose, EnvVerbose)

	helloPath := filepath.Join(tempDir, "bks-hello")
	srcFile := helloPath + ".go"
	if err := os.WriteFile(srcFile, []byte(helloSource), 0644); err != nil {
		t.Fatalf("Failed to write bks-hello source: %v", err)
	}
	build := exec.Command("go", "build", "-o", helloPath, srcFile)
	build.Stderr = os.Stderr
	if err := build.Run(); err != nil {
		t.Fatalf("Failed to compile bks-hello: %v", err)
	}

	bksPath := filepath.Join(tempDir, "bks")
	build = exec.Command("go", "build", "-o", bksPath, "../bks")
	build.Stderr = os.Stderr
	if err := build.Run(); err != nil {
		t.Fatalf("Failed to compile bks: %v", err)
	}

	wantFile := filepath.Join(tempDir, "shop.csv")
	args := []string{
		"-file", wantFile,
		"-currency", "EUR",
		"-v",
		"hello", "world",
	}
	bks := exec.Command(bksPath, args...)
	bks.Dir = tempDir
	bks.Env = []string{"PATH=" + tempDir + string(os.PathListSeparator) + os.Getenv("PATH")}

	var stdout, stderr bytes.Buffer
	bks.Stdout = &stdout
	bks.Stderr = &stderr
	if err := bks.Run(); err != nil {
		t.Fatalf("bks command failed: %v\nStdout: %s\nStderr: %s", err, stdout.String(), stderr.String())
	}

	output := stdout.String()
	for _, want := range []string{
		EnvInventoryFile + "=" + wantFile,
		EnvCurrency + "=EUR",
		EnvVerbose + "=" + strconv.FormatBool(true),
		"args=[world]",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected output to contain %q, but got:\n%s", want, output)
		}
	}
}

func TestRunExtension_NotFound(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	found, code := RunExtension("does-not-exist", nil)
	if found || code != 0 {
		t.Errorf("RunExtension() = %v, %d, want false, 0", found, code)
	}
}
