// Package messages provides the user-facing message catalog for stamping
// operations. Every string is Korean and is part of the caller-visible
// contract: batch results and reports carry these strings verbatim, so
// downstream consumers may compare against them.
//
// Numeric arguments are preformatted before they reach the printer so that
// locale-aware digit grouping can never alter page or object numbers.
package messages

import (
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Catalog keys. The key doubles as the untranslated fallback, so each key
// carries the same format verbs as its translation.
const (
	keyInvalidPosition   = "invalid position value"
	keyInvalidSizePreset = "invalid size preset"

	keyUnsupportedImageFile = "unsupported file type (jpg/png/webp)"
	keyImageReadFailed      = "failed to read image file"
	keyInvalidImageSize     = "image dimensions are invalid"
	keyImageSaveFailed      = "failed to save stamped image"

	keyLogoReadFailed   = "failed to read logo resource"
	keyLogoDecodeFailed = "failed to decode logo image"
	keyInvalidLogoSize  = "logo dimensions are invalid"

	keyUnsupportedPDFFile      = "unsupported PDF type (.pdf)"
	keyPDFReadFailed           = "failed to read PDF"
	keyPDFNoPages              = "PDF has no pages"
	keyPageObjectReadFailed    = "failed to read page %s object"
	keyObjectLookupFailed      = "object lookup failed (%s %s R)"
	keyPageObjectNotDict       = "page object is not a dictionary or stream"
	keyMediaBoxParseFailed     = "failed to parse page %s MediaBox"
	keyMediaBoxNotArray        = "MediaBox must be an array"
	keyMediaBoxRefLookupFailed = "MediaBox reference lookup failed (%s %s R)"
	keyMediaBoxRefNotArray     = "MediaBox reference is not an array"
	keyMediaBoxWrongLength     = "MediaBox does not have 4 elements"
	keyMediaBoxNotNumeric      = "MediaBox coordinate is not a number"
	keyMediaBoxDegenerate      = "MediaBox width/height is not positive"
	keyMediaBoxNotFound        = "no MediaBox found for page %s"
	keyInvalidPageSize         = "page dimensions are invalid"
	keyPageInsertFailed        = "failed to insert logo on page %s"
	keyXObjectCreateFailed     = "failed to create logo XObject"
	keyPDFSaveFailed           = "failed to save stamped PDF"

	keyUnsupportedImageFormat = "unsupported image format (jpg/png/webp)"
	keyNoParentDirectory      = "input file has no parent directory"
	keyOutputDirCreateFailed  = "failed to create output directory"
	keyOutputPathNotDirectory = "output path is not a directory"
	keyOutputBaseNotDirectory = "output base path is not a directory"

	keyUnsupportedFileType = "unsupported file type (jpg/jpeg/png/webp/pdf)"
	keyCancelled           = "cancelled"
	keyBatchAborted        = "batch worker aborted"

	keyLogoPathNotFile     = "selected logo file does not exist or is not a file"
	keyDefaultLogoNotFound = "default logo not found (cwd logo.png/logo.webp)"
	keyWorkingDirFailed    = "failed to determine working directory"
	keyLogoResolveFailed   = "failed to resolve logo file path"

	keyPreviewPrepareFailed = "failed to prepare preview output directory"
	keyPreviewRemoveFailed  = "failed to remove previous preview directory"
	keyPreviewCreateFailed  = "failed to create preview directory"
)

func init() {
	for key, text := range map[string]string{
		keyInvalidPosition:   "유효하지 않은 위치 값입니다.",
		keyInvalidSizePreset: "유효하지 않은 크기 프리셋입니다.",

		keyUnsupportedImageFile: "지원하지 않는 파일 형식입니다. (jpg/png/webp)",
		keyImageReadFailed:      "이미지 파일을 읽지 못했습니다",
		keyInvalidImageSize:     "이미지 크기가 유효하지 않습니다.",
		keyImageSaveFailed:      "결과 이미지를 저장하지 못했습니다",

		keyLogoReadFailed:   "로고 리소스를 읽지 못했습니다",
		keyLogoDecodeFailed: "로고 이미지 디코딩에 실패했습니다",
		keyInvalidLogoSize:  "로고 크기가 유효하지 않습니다.",

		keyUnsupportedPDFFile:      "지원하지 않는 PDF 형식입니다. (.pdf)",
		keyPDFReadFailed:           "PDF를 읽지 못했습니다",
		keyPDFNoPages:              "페이지가 없는 PDF 파일입니다.",
		keyPageObjectReadFailed:    "페이지 %s 객체를 읽지 못했습니다",
		keyObjectLookupFailed:      "객체 조회 실패(%s %s R)",
		keyPageObjectNotDict:       "페이지 객체가 Dictionary/Stream이 아닙니다.",
		keyMediaBoxParseFailed:     "페이지 %s MediaBox를 해석하지 못했습니다",
		keyMediaBoxNotArray:        "MediaBox는 배열이어야 합니다.",
		keyMediaBoxRefLookupFailed: "MediaBox 참조 객체 조회 실패(%s %s R)",
		keyMediaBoxRefNotArray:     "MediaBox 참조 객체가 배열이 아닙니다.",
		keyMediaBoxWrongLength:     "MediaBox 길이가 4가 아닙니다.",
		keyMediaBoxNotNumeric:      "MediaBox 좌표가 숫자가 아닙니다.",
		keyMediaBoxDegenerate:      "MediaBox 너비/높이가 0 이하입니다.",
		keyMediaBoxNotFound:        "페이지 %s의 MediaBox를 찾지 못했습니다.",
		keyInvalidPageSize:         "페이지 크기가 유효하지 않습니다.",
		keyPageInsertFailed:        "페이지 %s에 로고 삽입 실패",
		keyXObjectCreateFailed:     "로고 XObject 생성에 실패했습니다",
		keyPDFSaveFailed:           "결과 PDF를 저장하지 못했습니다",

		keyUnsupportedImageFormat: "지원하지 않는 이미지 형식입니다. (jpg/png/webp)",
		keyNoParentDirectory:      "입력 파일의 상위 경로를 찾을 수 없습니다.",
		keyOutputDirCreateFailed:  "출력 폴더를 만들지 못했습니다",
		keyOutputPathNotDirectory: "출력 경로가 디렉터리가 아닙니다.",
		keyOutputBaseNotDirectory: "출력 폴더 경로가 디렉터리가 아닙니다.",

		keyUnsupportedFileType: "지원하지 않는 파일 형식입니다. (jpg/jpeg/png/webp/pdf)",
		keyCancelled:           "취소됨",
		keyBatchAborted:        "배치 처리 작업이 중단되었습니다",

		keyLogoPathNotFile:     "선택한 로고 파일이 존재하지 않거나 파일이 아닙니다.",
		keyDefaultLogoNotFound: "기본 로고를 찾지 못했습니다. (cwd logo.png/logo.webp)",
		keyWorkingDirFailed:    "현재 경로를 확인하지 못했습니다",
		keyLogoResolveFailed:   "로고 파일 경로를 찾지 못했습니다",

		keyPreviewPrepareFailed: "미리보기 출력 디렉터리를 준비하지 못했습니다",
		keyPreviewRemoveFailed:  "기존 미리보기 디렉터리 삭제 실패",
		keyPreviewCreateFailed:  "미리보기 디렉터리 생성 실패",
	} {
		if err := message.SetString(language.Korean, key, text); err != nil {
			panic(err)
		}
	}
}

var printer = message.NewPrinter(language.Korean)

// Settings validation.

// InvalidPosition reports an unrecognized corner label.
func InvalidPosition() string { return printer.Sprintf(keyInvalidPosition) }

// InvalidSizePreset reports an unrecognized size preset label.
func InvalidSizePreset() string { return printer.Sprintf(keyInvalidSizePreset) }

// Image stamping. The *Failed accessors return prefixes meant to be wrapped
// around a cause with fmt.Errorf("%s: %w", ...).

// UnsupportedImageFile rejects inputs outside the jpg/jpeg/png/webp set.
func UnsupportedImageFile() string { return printer.Sprintf(keyUnsupportedImageFile) }

func ImageReadFailed() string { return printer.Sprintf(keyImageReadFailed) }

func InvalidImageSize() string { return printer.Sprintf(keyInvalidImageSize) }

func ImageSaveFailed() string { return printer.Sprintf(keyImageSaveFailed) }

// Logo loading.

func LogoReadFailed() string { return printer.Sprintf(keyLogoReadFailed) }

func LogoDecodeFailed() string { return printer.Sprintf(keyLogoDecodeFailed) }

func InvalidLogoSize() string { return printer.Sprintf(keyInvalidLogoSize) }

// PDF stamping.

// UnsupportedPDFFile rejects inputs without a .pdf extension.
func UnsupportedPDFFile() string { return printer.Sprintf(keyUnsupportedPDFFile) }

func PDFReadFailed() string { return printer.Sprintf(keyPDFReadFailed) }

func PDFNoPages() string { return printer.Sprintf(keyPDFNoPages) }

// PageObjectReadFailed names the page whose object could not be loaded.
func PageObjectReadFailed(page int) string {
	return printer.Sprintf(keyPageObjectReadFailed, strconv.Itoa(page))
}

// ObjectLookupFailed names the indirect object that could not be resolved.
func ObjectLookupFailed(objNr, genNr int) string {
	return printer.Sprintf(keyObjectLookupFailed, strconv.Itoa(objNr), strconv.Itoa(genNr))
}

func PageObjectNotDict() string { return printer.Sprintf(keyPageObjectNotDict) }

// MediaBoxParseFailed names the page whose MediaBox entry was malformed.
func MediaBoxParseFailed(page int) string {
	return printer.Sprintf(keyMediaBoxParseFailed, strconv.Itoa(page))
}

func MediaBoxNotArray() string { return printer.Sprintf(keyMediaBoxNotArray) }

// MediaBoxRefLookupFailed names the indirect MediaBox object that could not
// be resolved.
func MediaBoxRefLookupFailed(objNr, genNr int) string {
	return printer.Sprintf(keyMediaBoxRefLookupFailed, strconv.Itoa(objNr), strconv.Itoa(genNr))
}

func MediaBoxRefNotArray() string { return printer.Sprintf(keyMediaBoxRefNotArray) }

func MediaBoxWrongLength() string { return printer.Sprintf(keyMediaBoxWrongLength) }

func MediaBoxNotNumeric() string { return printer.Sprintf(keyMediaBoxNotNumeric) }

func MediaBoxDegenerate() string { return printer.Sprintf(keyMediaBoxDegenerate) }

// MediaBoxNotFound reports that neither the page nor its parent chain
// carries a MediaBox.
func MediaBoxNotFound(page int) string {
	return printer.Sprintf(keyMediaBoxNotFound, strconv.Itoa(page))
}

func InvalidPageSize() string { return printer.Sprintf(keyInvalidPageSize) }

// PageInsertFailed names the page on which logo insertion failed.
func PageInsertFailed(page int) string {
	return printer.Sprintf(keyPageInsertFailed, strconv.Itoa(page))
}

func XObjectCreateFailed() string { return printer.Sprintf(keyXObjectCreateFailed) }

func PDFSaveFailed() string { return printer.Sprintf(keyPDFSaveFailed) }

// Output paths.

// UnsupportedImageFormat is the output-path variant of the image extension
// gate.
func UnsupportedImageFormat() string { return printer.Sprintf(keyUnsupportedImageFormat) }

func NoParentDirectory() string { return printer.Sprintf(keyNoParentDirectory) }

func OutputDirCreateFailed() string { return printer.Sprintf(keyOutputDirCreateFailed) }

func OutputPathNotDirectory() string { return printer.Sprintf(keyOutputPathNotDirectory) }

func OutputBaseNotDirectory() string { return printer.Sprintf(keyOutputBaseNotDirectory) }

// Batch processing.

// UnsupportedFileType rejects batch inputs that are neither a supported
// image nor a PDF.
func UnsupportedFileType() string { return printer.Sprintf(keyUnsupportedFileType) }

// Cancelled marks results for files skipped after a batch was cancelled.
// It is a fixed sentinel, not a genuine failure.
func Cancelled() string { return printer.Sprintf(keyCancelled) }

// BatchAborted marks every result of a batch whose worker crashed.
func BatchAborted() string { return printer.Sprintf(keyBatchAborted) }

// Logo path resolution.

func LogoPathNotFile() string { return printer.Sprintf(keyLogoPathNotFile) }

func DefaultLogoNotFound() string { return printer.Sprintf(keyDefaultLogoNotFound) }

func WorkingDirFailed() string { return printer.Sprintf(keyWorkingDirFailed) }

func LogoResolveFailed() string { return printer.Sprintf(keyLogoResolveFailed) }

// Preview runs.

func PreviewPrepareFailed() string { return printer.Sprintf(keyPreviewPrepareFailed) }

func PreviewRemoveFailed() string { return printer.Sprintf(keyPreviewRemoveFailed) }

func PreviewCreateFailed() string { return printer.Sprintf(keyPreviewCreateFailed) }
