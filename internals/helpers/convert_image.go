// file: internals/helpers/convert_image.go
package helper

import (
	"bytes"
	"fmt"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"mime/multipart"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

// Batas upload foto siswa
const maxPhotoSize = 2 * 1024 * 1024 // 2MB

// ConvertToWebPThumbnail membaca file upload (jpeg/png), resize jadi thumbnail
// persegi lalu encode ke webp. Hasilnya disimpan sebagai bytea di DB.
func ConvertToWebPThumbnail(fileHeader *multipart.FileHeader, size int) ([]byte, error) {
	if fileHeader.Size > maxPhotoSize {
		return nil, fmt.Errorf("ukuran foto melebihi %dKB", maxPhotoSize/1024)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("gagal membuka file gambar: %w", err)
	}
	defer src.Close()

	buf := new(bytes.Buffer)
	if _, err := io.Copy(buf, src); err != nil {
		return nil, fmt.Errorf("gagal membaca file gambar: %w", err)
	}

	img, err := imaging.Decode(bytes.NewReader(buf.Bytes()), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("format gambar tidak dikenali: %w", err)
	}

	if size <= 0 {
		size = 256
	}
	thumb := imaging.Fill(img, size, size, imaging.Center, imaging.Lanczos)

	out := new(bytes.Buffer)
	if err := webp.Encode(out, thumb, &webp.Options{Lossless: false, Quality: 80}); err != nil {
		return nil, fmt.Errorf("gagal encode webp: %w", err)
	}
	return out.Bytes(), nil
}
