package types

// Config represents the overall application configuration
type Config struct {
	Storage   StorageConfig   `yaml:"storage" json:"storage"`
	Paths     PathsConfig     `yaml:"paths" json:"paths"`
	Book      BookConfig      `yaml:"book" json:"book"`
	Segmenter SegmenterConfig `yaml:"segmenter" json:"segmenter"`
}

// StorageConfig defines storage adapter settings
type StorageConfig struct {
	Adapter string           `yaml:"adapter" json:"adapter"` // "local" or "s3"
	Local   LocalStorageOpts `yaml:"local" json:"local"`
	S3      S3StorageOpts    `yaml:"s3" json:"s3"`
}

// LocalStorageOpts configures the local filesystem adapter
type LocalStorageOpts struct {
	BasePath string `yaml:"base_path" json:"base_path"`
}

// S3StorageOpts configures the S3-compatible adapter
type S3StorageOpts struct {
	Endpoint        string `yaml:"endpoint" json:"endpoint"`
	Region          string `yaml:"region" json:"region"`
	Bucket          string `yaml:"bucket" json:"bucket"`
	AccessKeyID     string `yaml:"access_key_id" json:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key" json:"secret_access_key"`
	UseSSL          bool   `yaml:"use_ssl" json:"use_ssl"`
}

// PathsConfig names the storage prefixes the converter works with.
// All are relative to the storage adapter root.
type PathsConfig struct {
	Input  string `yaml:"input" json:"input"`   // source .txt files and sibling covers
	Output string `yaml:"output" json:"output"` // generated .epub files
	Fonts  string `yaml:"fonts" json:"fonts"`   // embeddable font files
}

// BookConfig holds defaults applied to every converted book
type BookConfig struct {
	Language      string `yaml:"language" json:"language"`             // BCP 47 tag
	DefaultAuthor string `yaml:"default_author" json:"default_author"` // used when no author can be inferred
}

// SegmenterConfig tunes chapter-heading recognition
type SegmenterConfig struct {
	// HeadingPatterns are regular expressions matched against each
	// trimmed line, anchored at line start. A matching line opens a
	// new chapter.
	HeadingPatterns []string `yaml:"heading_patterns" json:"heading_patterns"`

	// MaxTitleLength is the maximum heading length in runes. Longer
	// lines are body text even when a pattern matches.
	MaxTitleLength int `yaml:"max_title_length" json:"max_title_length"`
}
