package utils

import (
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"os"
)

// DownloadImage retrieves a remote image into a temporary file so it can be
// decoded like a local source. The caller is responsible for removing the
// returned file.
func DownloadImage(url string) (*os.File, error) {
	res, err := http.Get(url)
	if err != nil {
		return nil, fmt.Errorf("unable to download image file from URI: %s: %v", url, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unable to download image file from URI: %s, status %v", url, res.Status)
	}

	tmpfile, err := ioutil.TempFile("", "terrain")
	if err != nil {
		return nil, fmt.Errorf("unable to create temporary file: %v", err)
	}

	if _, err = io.Copy(tmpfile, res.Body); err != nil {
		tmpfile.Close()
		return nil, fmt.Errorf("unable to copy the source URI into the destination file: %v", err)
	}
	if _, err = tmpfile.Seek(0, io.SeekStart); err != nil {
		tmpfile.Close()
		return nil, fmt.Errorf("unable to rewind the temporary file: %v", err)
	}
	return tmpfile, nil
}
