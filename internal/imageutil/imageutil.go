package imageutil

import (
	"os"

	goqr "github.com/piglig/go-qr"
)

// CreateTempQRCode renders content as a PNG QR code in a temp file and
// returns its path. scale is the pixel size of one module, border the quiet
// zone in modules. The caller removes the file.
func CreateTempQRCode(content string, scale, border int) (string, error) {
	qr, err := goqr.EncodeText(content, goqr.Low)
	if err != nil {
		return "", err
	}

	tempFile, err := os.CreateTemp("", "qrcode-*.png")
	if err != nil {
		return "", err
	}
	tempFile.Close()

	config := goqr.NewQrCodeImgConfig(scale, border)
	if err := qr.PNG(config, tempFile.Name()); err != nil {
		os.Remove(tempFile.Name())
		return "", err
	}

	return tempFile.Name(), nil
}
