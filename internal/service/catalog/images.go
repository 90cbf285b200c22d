package catalog

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"vibe-shop/internal/apperr"
)

// picked group size
const groupSize = 5

var (
	imageExtRe = regexp.MustCompile(`(?i)\.(jpe?g|png|webp)$`)
	suffixRe   = regexp.MustCompile(`_(\d+)`)
	numberedRe = regexp.MustCompile(`_(\d+)\.`)
	chartRe    = regexp.MustCompile(`(?i)(chart|size|sizing|dimension|guide|table|таблиц|размер)`)
	sixthRe    = regexp.MustCompile(`_6\.`)
)

var allowedExt = map[string]bool{".jpg": true, ".jpeg": true, ".png": true, ".webp": true}

// Upload is an uploaded image file.
type Upload struct {
	Filename string
	Content  io.Reader
}

// ImageDir manages product images named <groupID>_<n>.<ext>.
type ImageDir struct {
	dir       string
	urlPrefix string
}

// NewImageDir creates an ImageDir storing files in dir and publishing them under urlPrefix.
func NewImageDir(dir, urlPrefix string) *ImageDir {
	return &ImageDir{dir: dir, urlPrefix: strings.TrimRight(urlPrefix, "/")}
}

// URL returns the public URL of a file.
func (d *ImageDir) URL(name string) string {
	return d.urlPrefix + "/" + path.Base(name)
}

func (d *ImageDir) files() ([]string, error) {
	entries, err := os.ReadDir(d.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read images: %w", err)
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Type().IsRegular() {
			out = append(out, e.Name())
		}
	}
	return out, nil
}

// Groups returns image file names by numeric group id, each sorted by suffix.
func (d *ImageDir) Groups() (map[int64][]string, error) {
	names, err := d.files()
	if err != nil {
		return nil, err
	}
	groups := make(map[int64][]string)
	for _, n := range names {
		if !imageExtRe.MatchString(n) {
			continue
		}
		key, _, ok := strings.Cut(n, "_")
		if !ok {
			continue
		}
		id, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			continue
		}
		groups[id] = append(groups[id], n)
	}
	for _, list := range groups {
		sort.Slice(list, func(i, j int) bool {
			a, b := suffixOf(list[i]), suffixOf(list[j])
			if a != b {
				return a < b
			}
			return list[i] < list[j]
		})
	}
	return groups, nil
}

func suffixOf(name string) int {
	m := suffixRe.FindStringSubmatch(name)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}

func isSizeChart(name string) bool {
	return sixthRe.MatchString(name) || chartRe.MatchString(name)
}

// PickGallery selects four numbered photos plus the size chart, or five
// numbered photos when there is no chart. ok is false unless exactly five were picked.
func PickGallery(sorted []string) ([]string, bool) {
	chart := ""
	for _, n := range sorted {
		if isSizeChart(n) {
			chart = n
			break
		}
	}
	take := groupSize
	if chart != "" {
		take--
	}
	picked := make([]string, 0, groupSize)
	for _, n := range sorted {
		if len(picked) == take {
			break
		}
		if n == chart || !numberedRe.MatchString(n) {
			continue
		}
		picked = append(picked, n)
	}
	if chart != "" {
		picked = append(picked, chart)
	}
	return picked, len(picked) == groupSize
}

func (d *ImageDir) urls(names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = d.URL(n)
	}
	return out
}

// Save stores uploads as <pid>_<n><ext>. With replace, existing images of pid
// are removed first; otherwise numbering continues after the highest suffix.
// Files with unsupported extensions are skipped.
func (d *ImageDir) Save(pid int64, files []Upload, replace bool) ([]string, error) {
	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return nil, fmt.Errorf("create images dir: %w", err)
	}
	prefix := strconv.FormatInt(pid, 10) + "_"

	counter := 1
	if replace {
		if _, err := d.DeleteAll(pid); err != nil {
			return nil, err
		}
	} else {
		names, err := d.files()
		if err != nil {
			return nil, err
		}
		for _, n := range names {
			if !strings.HasPrefix(n, prefix) {
				continue
			}
			if v, ok := leadingNumber(n[len(prefix):]); ok && v+1 > counter {
				counter = v + 1
			}
		}
	}

	saved := []string{}
	for _, f := range files {
		ext := strings.ToLower(filepath.Ext(f.Filename))
		if !allowedExt[ext] {
			continue
		}
		name := fmt.Sprintf("%s%d%s", prefix, counter, ext)
		if err := writeFile(filepath.Join(d.dir, name), f.Content); err != nil {
			return saved, err
		}
		saved = append(saved, d.URL(name))
		counter++
	}
	return saved, nil
}

// leadingNumber parses "<digits>." at the start of s.
func leadingNumber(s string) (int, bool) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 || i >= len(s) || s[i] != '.' {
		return 0, false
	}
	v, err := strconv.Atoi(s[:i])
	return v, err == nil
}

func writeFile(dst string, r io.Reader) error {
	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create image: %w", err)
	}
	if _, err := io.Copy(out, r); err != nil {
		_ = out.Close()
		_ = os.Remove(dst)
		return fmt.Errorf("write image: %w", err)
	}
	return out.Close()
}

// DeleteAll removes every image of pid and returns how many were removed.
func (d *ImageDir) DeleteAll(pid int64) (int, error) {
	names, err := d.files()
	if err != nil {
		return 0, err
	}
	prefix := strconv.FormatInt(pid, 10) + "_"
	deleted := 0
	for _, n := range names {
		if !strings.HasPrefix(n, prefix) {
			continue
		}
		if err := os.Remove(filepath.Join(d.dir, n)); err == nil {
			deleted++
		}
	}
	return deleted, nil
}

// Delete removes a single image of pid.
func (d *ImageDir) Delete(pid int64, filename string) error {
	if filename == "" || filename != filepath.Base(filename) || strings.ContainsAny(filename, `/\`) ||
		filename == "." || filename == ".." {
		return fmt.Errorf("%w: bad file name", apperr.ErrInvalid)
	}
	full := filepath.Join(d.dir, filename)
	st, err := os.Stat(full)
	if err != nil || !st.Mode().IsRegular() {
		return fmt.Errorf("%w: file not found", apperr.ErrNotFound)
	}
	if !strings.HasPrefix(filename, strconv.FormatInt(pid, 10)+"_") {
		return fmt.Errorf("%w: filename does not match product id", apperr.ErrInvalid)
	}
	if err := os.Remove(full); err != nil {
		return fmt.Errorf("delete image: %w", err)
	}
	return nil
}

// SyncFrom copies image files from src when the directory is empty.
// It returns the number of copied files.
func (d *ImageDir) SyncFrom(src string) (int, error) {
	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return 0, fmt.Errorf("create images dir: %w", err)
	}
	existing, err := os.ReadDir(d.dir)
	if err != nil {
		return 0, fmt.Errorf("read images: %w", err)
	}
	if len(existing) > 0 || src == "" {
		return 0, nil
	}
	entries, err := os.ReadDir(src)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read source images: %w", err)
	}
	copied := 0
	for _, e := range entries {
		if !e.Type().IsRegular() || !imageExtRe.MatchString(e.Name()) {
			continue
		}
		if err := copyFile(filepath.Join(src, e.Name()), filepath.Join(d.dir, e.Name())); err != nil {
			return copied, err
		}
		copied++
	}
	return copied, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open %s: %w", src, err)
	}
	defer func() { _ = in.Close() }()
	return writeFile(dst, in)
}
