// Command pdfupload uploads a signed PDF through the backend's multipart
// endpoints using the same uploader as the gateway. It is meant for operators
// replaying a signature upload that failed in the browser.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
