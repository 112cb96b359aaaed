/*
 * custom.go, part of goPlumed.
 *
 *
 * Copyright 2024 rmeraaatacademicosdotutadotcl
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 * goPlumed is developed at Universidad de Tarapaca (UTA)
 *
 *
 */

package plumed

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// PrintKeyword is the directive a custom script uses to declare its CVs.
const PrintKeyword = "PRINT"

// CustomScript is a user-written PLUMED file, split into the CV names it
// prints, its PRINT line (rewritten with a new stride and output file) and
// everything else.
type CustomScript struct {
	Body  string   //every line except the PRINT one, unchanged
	Names []string //the CVs in the ARG field of the PRINT line
	Print string   //the PRINT line with the new STRIDE and FILE
}

// SelectScript returns the only file in files that is not a PDB structure.
// Custom runs ship their structure next to the PLUMED file.
func SelectScript(files []string) (string, error) {
	var script string
	for _, f := range files {
		if strings.EqualFold(filepath.Ext(f), ".pdb") {
			continue
		}
		if script != "" {
			return "", newError(ErrMalformedScript, "SelectScript", "more than one custom plumed file given: %s and %s", script, f)
		}
		script = f
	}
	if script == "" {
		return "", newError(ErrScriptNotFound, "SelectScript", "no custom plumed file among %v", files)
	}
	return script, nil
}

// ReadCustom reads the custom PLUMED file in path. See ParseCustom.
func ReadCustom(path string, stride int, file string) (*CustomScript, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &Error{kind: ErrScriptNotFound, msg: path, cause: err, deco: []string{"ReadCustom"}}
	}
	defer f.Close()
	cs, err := ParseCustom(f, stride, file)
	if err != nil {
		var perr *Error
		if errors.As(err, &perr) && perr.msg != "" {
			perr.msg = path + ": " + perr.msg
		}
		return nil, errDecorate(err, "ReadCustom")
	}
	return cs, nil
}

// ParseCustom reads a PLUMED file that must contain exactly one uncommented
// PRINT line whose ARG field lists the CVs. It returns the CV names, the
// PRINT line with its STRIDE and FILE fields replaced by stride and file,
// and the rest of the file unchanged. Comment lines (starting with #) are
// kept in the body and are never taken as the PRINT line.
func ParseCustom(r io.Reader, stride int, file string) (*CustomScript, error) {
	body := make([]string, 0)
	var names []string
	var printLine string
	found := false
	scanner := bufio.NewScanner(r)
	nline := 0
	for scanner.Scan() {
		nline++
		line := scanner.Text()
		if !isPrintLine(line) {
			body = append(body, line)
			continue
		}
		if found {
			return nil, newError(ErrMalformedScript, "ParseCustom", "line %d: only one %s line is allowed", nline, PrintKeyword)
		}
		found = true
		var err error
		names, printLine, err = rewritePrint(line, stride, file)
		if err != nil {
			return nil, errDecorate(err, fmt.Sprintf("ParseCustom (line %d)", nline))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, &Error{kind: ErrMalformedScript, msg: "reading", cause: err, deco: []string{"ParseCustom"}}
	}
	if !found {
		return nil, newError(ErrMalformedScript, "ParseCustom", "no uncommented %s line", PrintKeyword)
	}
	if strings.TrimSpace(strings.Join(body, "")) == "" || len(names) == 0 {
		return nil, newError(ErrMalformedScript, "ParseCustom", "no CV definitions")
	}
	return &CustomScript{Body: strings.Join(body, "\n"), Names: names, Print: printLine}, nil
}

// code returns line without its comment.
func code(line string) string {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		return line[:i]
	}
	return line
}

func isPrintLine(line string) bool {
	for _, tok := range strings.Fields(code(line)) {
		if tok == PrintKeyword {
			return true
		}
	}
	return false
}

// rewritePrint extracts the CV names from a PRINT line and returns the line
// with new STRIDE and FILE fields. Fields are located by their key; a missing
// STRIDE is added right after the keyword and a missing FILE at the end.
// Other fields keep their place. A trailing comment is dropped.
func rewritePrint(line string, stride int, file string) ([]string, string, error) {
	tokens := strings.Fields(code(line))
	argIdx, strideIdx, fileIdx, keyIdx := -1, -1, -1, -1
	for i, tok := range tokens {
		switch {
		case tok == PrintKeyword && keyIdx < 0:
			keyIdx = i
		case strings.HasPrefix(tok, "ARG="):
			argIdx = i
		case strings.HasPrefix(tok, "STRIDE="):
			strideIdx = i
		case strings.HasPrefix(tok, "FILE="):
			fileIdx = i
		}
	}
	if argIdx < 0 {
		return nil, "", newError(ErrMalformedScript, "rewritePrint", "no ARG field in %q", line)
	}
	arg := strings.SplitN(tokens[argIdx], "=", 2)[1]
	if arg == "" {
		return nil, "", newError(ErrMalformedScript, "rewritePrint", "empty ARG field in %q", line)
	}
	names := strings.Split(arg, ",")
	for _, n := range names {
		if n == "" {
			return nil, "", newError(ErrMalformedScript, "rewritePrint", "empty CV name in %q", tokens[argIdx])
		}
	}
	if printed := strings.Count(code(line), ",") + 1; printed != len(names) {
		return nil, "", newError(ErrLengthMismatch, "rewritePrint", "there are %d CVs defined in the plumed file, while %d CVs are printed", len(names), printed)
	}
	strideTok := fmt.Sprintf("STRIDE=%d", stride)
	fileTok := "FILE=" + file
	if fileIdx >= 0 {
		tokens[fileIdx] = fileTok
	} else {
		tokens = append(tokens, fileTok)
	}
	if strideIdx >= 0 {
		tokens[strideIdx] = strideTok
	} else {
		tokens = append(tokens[:keyIdx+1], append([]string{strideTok}, tokens[keyIdx+1:]...)...)
	}
	return names, strings.Join(tokens, " "), nil
}
