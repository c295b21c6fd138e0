package bundle

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

const (
	documentHeaderFormat    = "# Project Bundle: %s\n\n"
	documentHeaderIntro     = "This file contains a bundle of all relevant code files from the project, formatted for use with an AI.\n"
	documentHeaderListing   = "Each file's content is enclosed in a Markdown code block, with its original path specified.\n\n"
	entrySeparator          = "---\n\n"
	entryPathFormat         = "**File:** `%s`\n\n"
	entryOpenFenceFormat    = "```%s\n"
	entryCloseFence         = "\n```\n\n"
	errorCreateOutputFormat = "creating output file %s: %w"
	errorWriteOutputFormat  = "writing to output file %s: %w"
	errorCloseOutputFormat  = "closing output file %s: %w"
)

// documentWriter streams the Markdown bundle to the output file.
type documentWriter struct {
	outputPath   string
	outputFile   *os.File
	outputBuffer *bufio.Writer
}

// newDocumentWriter creates (or truncates) the output file at outputPath.
func newDocumentWriter(outputPath string) (*documentWriter, error) {
	outputFile, createError := os.Create(outputPath)
	if createError != nil {
		return nil, fmt.Errorf(errorCreateOutputFormat, outputPath, createError)
	}
	return &documentWriter{
		outputPath:   outputPath,
		outputFile:   outputFile,
		outputBuffer: bufio.NewWriter(outputFile),
	}, nil
}

// WriteHeader emits the document title and the fixed introduction.
func (writer *documentWriter) WriteHeader(projectName string) error {
	if _, writeError := fmt.Fprintf(writer.outputBuffer, documentHeaderFormat, projectName); writeError != nil {
		return fmt.Errorf(errorWriteOutputFormat, writer.outputPath, writeError)
	}
	if _, writeError := writer.outputBuffer.WriteString(documentHeaderIntro); writeError != nil {
		return fmt.Errorf(errorWriteOutputFormat, writer.outputPath, writeError)
	}
	if _, writeError := writer.outputBuffer.WriteString(documentHeaderListing); writeError != nil {
		return fmt.Errorf(errorWriteOutputFormat, writer.outputPath, writeError)
	}
	return nil
}

// WriteFileEntry emits one bundled file: a separator, the relative path, and
// the file contents inside a language-tagged code fence. Contents are trimmed
// of leading and trailing whitespace before fencing.
func (writer *documentWriter) WriteFileEntry(relativePath string, languageTag string, fileContent string) error {
	if _, writeError := writer.outputBuffer.WriteString(entrySeparator); writeError != nil {
		return fmt.Errorf(errorWriteOutputFormat, writer.outputPath, writeError)
	}
	if _, writeError := fmt.Fprintf(writer.outputBuffer, entryPathFormat, relativePath); writeError != nil {
		return fmt.Errorf(errorWriteOutputFormat, writer.outputPath, writeError)
	}
	if _, writeError := fmt.Fprintf(writer.outputBuffer, entryOpenFenceFormat, languageTag); writeError != nil {
		return fmt.Errorf(errorWriteOutputFormat, writer.outputPath, writeError)
	}
	if _, writeError := writer.outputBuffer.WriteString(strings.TrimSpace(fileContent)); writeError != nil {
		return fmt.Errorf(errorWriteOutputFormat, writer.outputPath, writeError)
	}
	if _, writeError := writer.outputBuffer.WriteString(entryCloseFence); writeError != nil {
		return fmt.Errorf(errorWriteOutputFormat, writer.outputPath, writeError)
	}
	return nil
}

// Close flushes buffered output and closes the underlying file.
func (writer *documentWriter) Close() error {
	if flushError := writer.outputBuffer.Flush(); flushError != nil {
		writer.outputFile.Close()
		return fmt.Errorf(errorWriteOutputFormat, writer.outputPath, flushError)
	}
	if closeError := writer.outputFile.Close(); closeError != nil {
		return fmt.Errorf(errorCloseOutputFormat, writer.outputPath, closeError)
	}
	return nil
}
