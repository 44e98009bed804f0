package mimetypes

// FallbackType is served when an extension has no registry entry.
const FallbackType = "text/plain"

// MimeTypes maps lowercase file extensions to the Content-Type value served
// for them. Values carry no charset parameter; bodies are served byte for
// byte, so the registry makes no claims about encoding.
var MimeTypes = map[string]string{
	// Text
	".html": "text/html",
	".htm":  "text/html",
	".css":  "text/css",
	".txt":  "text/plain",
	".csv":  "text/csv",
	".md":   "text/markdown",
	".xml":  "text/xml",

	// Scripts and data
	".js":   "application/javascript",
	".mjs":  "application/javascript",
	".json": "application/json",
	".map":  "application/json",
	".yaml": "application/yaml",
	".yml":  "application/yaml",
	".toml": "application/toml",
	".wasm": "application/wasm",

	// Images
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".webp": "image/webp",
	".svg":  "image/svg+xml",
	".ico":  "image/x-icon",
	".bmp":  "image/bmp",
	".avif": "image/avif",

	// Fonts
	".woff":  "font/woff",
	".woff2": "font/woff2",
	".ttf":   "font/ttf",
	".otf":   "font/otf",
	".eot":   "application/vnd.ms-fontobject",

	// Audio
	".mp3": "audio/mpeg",
	".wav": "audio/wav",
	".ogg": "audio/ogg",

	// Video
	".mp4":  "video/mp4",
	".webm": "video/webm",

	// Archives and documents
	".zip": "application/zip",
	".gz":  "application/gzip",
	".tar": "application/x-tar",
	".pdf": "application/pdf",
}

// GetMimeType returns the MIME type for a given file extension.
// The extension should be lowercase and include the leading dot (e.g. ".css").
// Returns FallbackType if the extension is not recognized.
func GetMimeType(ext string) string {
	if mime, ok := MimeTypes[ext]; ok {
		return mime
	}
	return FallbackType
}
