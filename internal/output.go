package internal

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path"

	"github.com/aquasecurity/table"
	"github.com/fatih/color"
	json "github.com/goccy/go-json"
	"github.com/spf13/afero"
)

var cyan = color.New(color.FgCyan).SprintFunc()

// Used for file system mocking with Afero library. Set:
// fileSystem = afero.NewOsFs() if not unit testing (code will use real file system) OR
// fileSystem = afero.NewMemMapFs() for a mocked file system (when unit testing)
var fileSystem = afero.NewOsFs()

type OutputClient struct {
	Verbosity        int
	CallingModule    string
	PrefixIdentifier string
	Table            TableClient
}

type TableClient struct {
	Wrap          bool
	DirectoryName string
	TableFiles    []TableFile
}

type TableFile struct {
	Name              string
	TableFilePointer  afero.File
	CSVFilePointer    afero.File
	JSONFilePointer   afero.File
	Header            []string
	Body              [][]string
	SkipPrintToScreen bool
}

// WriteFullOutput renders every table file to table/, csv/ and json/
// subdirectories of the client's output directory and reports each path.
func (o *OutputClient) WriteFullOutput(tables []TableFile) {
	if o.Verbosity > 2 {
		o.Table.printTablesToScreen(tables)
	}

	o.Table.createTableFiles(tables)
	tableOutputPaths := o.Table.writeTableFiles()
	o.Table.createCSVFiles()
	csvOutputPaths := o.Table.writeCSVFiles()
	o.Table.createJSONFiles()
	jsonOutputPaths := o.Table.writeJSONFiles()

	var outputPaths []string
	outputPaths = append(outputPaths, tableOutputPaths...)
	outputPaths = append(outputPaths, csvOutputPaths...)
	outputPaths = append(outputPaths, jsonOutputPaths...)

	for _, path := range outputPaths {
		fmt.Printf("[%s][%s] Output written to %s\n", cyan(o.CallingModule), cyan(o.PrefixIdentifier), path)
	}
}

func (b *TableClient) printTablesToScreen(tableFiles []TableFile) {
	for _, tf := range tableFiles {
		if tf.SkipPrintToScreen {
			continue
		}
		standardColumnWidth := 1000
		t := table.New(os.Stdout)

		if !b.Wrap {
			t.SetColumnMaxWidth(standardColumnWidth)
		}

		t.SetHeaders(tf.Header...)
		t.AddRows(tf.Body...)
		t.SetHeaderStyle(table.StyleBold)
		t.SetRowLines(false)
		t.SetLineStyle(table.StyleCyan)
		t.SetDividers(table.UnicodeRoundedDividers)
		t.SetAlignment(table.AlignLeft)
		t.Render()
	}
}

func (b *TableClient) openArtifactFile(subdirectory string, fileName string) afero.File {
	if b.DirectoryName == "" {
		b.DirectoryName = "."
	}

	directory := path.Join(b.DirectoryName, subdirectory)

	if _, err := fileSystem.Stat(directory); os.IsNotExist(err) {
		err = fileSystem.MkdirAll(directory, 0700)
		if err != nil {
			log.Fatal(err)
		}
	}

	filePointer, err := fileSystem.OpenFile(path.Join(directory, fileName), os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		log.Fatalf("error creating output file: %s", err)
	}
	return filePointer
}

func (b *TableClient) createTableFiles(files []TableFile) {
	b.TableFiles = files

	for i, file := range b.TableFiles {
		if file.Name == "" {
			log.Fatalf("error creating table file: no file name was specified")
		}
		b.TableFiles[i].TableFilePointer = b.openArtifactFile("table", fmt.Sprintf("%s.txt", file.Name))
	}
}

func (b *TableClient) writeTableFiles() []string {
	var fullFilePaths []string

	for _, file := range b.TableFiles {
		standardColumnWidth := 1000
		t := table.New(file.TableFilePointer)

		if !b.Wrap {
			t.SetColumnMaxWidth(standardColumnWidth)
		}

		t.SetHeaders(file.Header...)
		t.AddRows(file.Body...)
		t.SetRowLines(false)
		t.SetDividers(table.UnicodeRoundedDividers)
		t.SetAlignment(table.AlignLeft)
		t.Render()

		fullFilePaths = append(fullFilePaths, path.Join(b.DirectoryName, "table", fmt.Sprintf("%s.txt", file.Name)))
	}

	return fullFilePaths
}

func (b *TableClient) createCSVFiles() {
	for i, file := range b.TableFiles {
		if file.Name == "" {
			log.Fatalf("error creating csv file: no file name was specified")
		}
		b.TableFiles[i].CSVFilePointer = b.openArtifactFile("csv", fmt.Sprintf("%s.csv", file.Name))
	}
}

func (b *TableClient) writeCSVFiles() []string {
	var fullFilePaths []string

	for _, file := range b.TableFiles {
		csvWriter := csv.NewWriter(file.CSVFilePointer)
		csvWriter.Write(file.Header)
		for _, row := range file.Body {
			csvWriter.Write(row)
		}
		csvWriter.Flush()

		fullFilePaths = append(fullFilePaths, path.Join(b.DirectoryName, "csv", fmt.Sprintf("%s.csv", file.Name)))
	}

	return fullFilePaths
}

func (b *TableClient) createJSONFiles() {
	for i, file := range b.TableFiles {
		if file.Name == "" {
			log.Fatalf("error creating json file: no file name was specified")
		}
		b.TableFiles[i].JSONFilePointer = b.openArtifactFile("json", fmt.Sprintf("%s.json", file.Name))
	}
}

func (b *TableClient) writeJSONFiles() []string {
	var fullFilePaths []string

	for _, file := range b.TableFiles {
		jsonData := make([]map[string]string, len(file.Body))
		for i, row := range file.Body {
			jsonData[i] = make(map[string]string)
			for j, column := range row {
				jsonData[i][file.Header[j]] = column
			}
		}

		jsonBytes, err := json.MarshalIndent(jsonData, "", "  ")
		if err != nil {
			fmt.Println("error marshalling json:", err)
		}

		_, err = file.JSONFilePointer.Write(jsonBytes)
		if err != nil {
			log.Fatalf("error writing json: %s", err)
		}

		fullFilePaths = append(fullFilePaths, path.Join(b.DirectoryName, "json", fmt.Sprintf("%s.json", file.Name)))
	}

	return fullFilePaths
}

// MockFileSystem swaps the package file system for an in-memory one. Tests
// only.
func MockFileSystem(switcher bool) afero.Fs {
	if switcher {
		fileSystem = afero.NewMemMapFs()
	} else {
		fileSystem = afero.NewOsFs()
	}
	return fileSystem
}
