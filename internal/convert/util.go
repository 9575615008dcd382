package convert

import (
	"bufio"
	"io"
	"os"
	"strings"
)

const lineTerminator = "\n"

// ReadLines splits r into lines. A trailing "\r\n" or "\n" is removed from
// each line; a lone '\r' is kept.
func ReadLines(r io.Reader) ([]string, error) {
	br := bufio.NewReader(r)
	var lines []string
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			lines = append(lines, trimEOL(line))
		}
		if err == io.EOF {
			return lines, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

func trimEOL(line string) string {
	if !strings.HasSuffix(line, "\n") {
		return line
	}
	line = line[:len(line)-1]
	return strings.TrimSuffix(line, "\r")
}

// Emit joins lines with "\n" and writes them to w. No terminator follows
// the last line.
func Emit(w io.Writer, lines []string) error {
	_, err := io.WriteString(w, strings.Join(lines, lineTerminator))
	return err
}

func loadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fileError("open", path, err, codeInputOpen)
	}
	lines, readErr := ReadLines(f)
	closeErr := f.Close()
	if readErr != nil {
		return nil, fileError("read", path, readErr, codeInputRead)
	}
	if closeErr != nil {
		return nil, fileError("close", path, closeErr, codeInputClose)
	}
	return lines, nil
}

// writeFile truncates path and hands it to write. The file is closed even
// when write fails; a failed close is reported.
func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fileError("open", path, err, codeOutputOpen)
	}
	writeErr := write(f)
	closeErr := f.Close()
	if writeErr != nil {
		return fileError("write", path, writeErr, codeOutputWrite)
	}
	if closeErr != nil {
		return fileError("close", path, closeErr, codeOutputClose)
	}
	return nil
}
