package library

import (
	"os"
	"sort"
	"sync"

	"github.com/qlquery/qlquery/qlquery"
	"github.com/saracen/walker"
)

// CollectDumpFiles walks filesystem collecting all song dumps
func CollectDumpFiles(locations []string, reporter qlquery.ResultReporter) (dumpFiles, failedFiles []string) {
	dumpFilesLock := &sync.Mutex{}

	for _, location := range locations {
		info, err2 := os.Stat(location)
		if err2 != nil {
			reporter.Warning("Unable to process %s: %s", location, err2)
			failedFiles = append(failedFiles, location)
			continue
		}
		if info.IsDir() {
			err2 = walker.Walk(location, func(path string, info os.FileInfo) error {
				if info.IsDir() {
					return nil
				}

				if _, ok := DetectFormat(info.Name()); ok {
					dumpFilesLock.Lock()
					defer dumpFilesLock.Unlock()
					dumpFiles = append(dumpFiles, path)
				}

				return nil
			})

			if err2 != nil {
				reporter.Warning("Unable to process %s: %s", location, err2)
				failedFiles = append(failedFiles, location)
				continue
			}
		} else {
			if _, ok := DetectFormat(info.Name()); ok {
				dumpFiles = append(dumpFiles, location)
			} else {
				reporter.Warning("Unknown file extension: %s", location)
				failedFiles = append(failedFiles, location)
				continue
			}
		}
	}

	sort.Strings(dumpFiles)

	return
}

// LoadDumpFiles loads songs out of every file into collection, files which
// fail to load are reported and returned
func LoadDumpFiles(collection *Collection, dumpFiles []string, reporter qlquery.ResultReporter) (failedFiles []string) {
	for _, path := range dumpFiles {
		songs, err := LoadFile(path)
		if err != nil {
			reporter.Warning("%s", err)
			failedFiles = append(failedFiles, path)
			continue
		}

		collection.Add(songs...)
	}

	return
}
