package provision

import (
	"archive/tar"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// extractTool scans a gzip-compressed tar archive for the regular file
// named name and writes it, executable, into destDir. The upstream
// archives place the binary next to license files, so members are
// matched by base name wherever they sit.
func extractTool(archivePath, destDir, name string) (string, error) {
	f, err := os.Open(archivePath)
	if err != nil {
		return "", errors.Wrapf(err, "failed to open archive %s", archivePath)
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return "", errors.Wrapf(err, "failed to read archive %s", archivePath)
	}
	defer gz.Close()

	tr := tar.NewReader(gz)
	for {
		header, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", errors.Wrapf(err, "failed to read archive %s", archivePath)
		}
		if header.Typeflag != tar.TypeReg || filepath.Base(header.Name) != name {
			continue
		}

		dest := filepath.Join(destDir, name)
		out, err := os.OpenFile(dest, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0755)
		if err != nil {
			return "", errors.Wrapf(err, "failed to create %s", dest)
		}
		if _, err := io.Copy(out, tr); err != nil {
			out.Close()
			return "", errors.Wrapf(err, "failed to extract %s", name)
		}
		if err := out.Close(); err != nil {
			return "", errors.Wrapf(err, "failed to extract %s", name)
		}
		return dest, nil
	}
	return "", errors.Errorf("archive %s does not contain %s", archivePath, name)
}
