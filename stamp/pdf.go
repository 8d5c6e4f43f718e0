package stamp

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/cornerbrand/cornerbrand/messages"
	"github.com/cornerbrand/cornerbrand/naming"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

var (
	// ErrUnsupportedPDF indicates an input without a .pdf extension.
	ErrUnsupportedPDF = errors.New(messages.UnsupportedPDFFile())
	// ErrNoPages indicates a document whose page tree is empty.
	ErrNoPages = errors.New(messages.PDFNoPages())
	// ErrInvalidPageSize indicates a resolved page with a non-positive
	// dimension.
	ErrInvalidPageSize = errors.New(messages.InvalidPageSize())
	// ErrInvalidLogoSize indicates a flattened logo with a zero dimension.
	ErrInvalidLogoSize = errors.New(messages.InvalidLogoSize())
)

// parentChainLimit bounds the page-tree Parent walk so cyclic or
// malformed chains terminate instead of looping.
const parentChainLimit = 32

// StampPDF stamps every page of one PDF and returns the allocated output
// path. Page sizes are resolved per page, so mixed page sizes within one
// document each receive an independently sized logo. A failure on any
// page aborts the whole file. The document is compacted before writing.
func StampPDF(inputPath string, logo *FlatLogo, s Settings, outputBaseDir string) (string, error) {
	if !naming.IsPDF(inputPath) {
		return "", ErrUnsupportedPDF
	}
	if logo.Width <= 0 || logo.Height <= 0 {
		return "", ErrInvalidLogoSize
	}

	ctx, err := api.ReadContextFile(inputPath)
	if err != nil {
		return "", fmt.Errorf("%s: %w", messages.PDFReadFailed(), err)
	}
	if ctx.PageCount == 0 {
		return "", ErrNoPages
	}

	logoRef, err := newLogoXObject(ctx.XRefTable, logo)
	if err != nil {
		return "", fmt.Errorf("%s: %w", messages.XObjectCreateFailed(), err)
	}
	logoName := fmt.Sprintf("Im%d", logoRef.ObjectNumber)

	for pageNr := 1; pageNr <= ctx.PageCount; pageNr++ {
		if err := stampPage(ctx.XRefTable, pageNr, logoRef, logoName, logo, s); err != nil {
			return "", err
		}
	}

	if err := api.OptimizeContext(ctx); err != nil {
		return "", fmt.Errorf("%s: %w", messages.PDFSaveFailed(), err)
	}
	outputPath, err := naming.OutputPDFPath(inputPath, outputBaseDir)
	if err != nil {
		return "", err
	}
	if err := api.WriteContextFile(ctx, outputPath); err != nil {
		return "", fmt.Errorf("%s: %w", messages.PDFSaveFailed(), err)
	}
	return outputPath, nil
}

// newLogoXObject registers the flattened logo as one shared image
// XObject; every page references the same object.
func newLogoXObject(xRefTable *model.XRefTable, logo *FlatLogo) (*types.IndirectRef, error) {
	sd, err := xRefTable.NewStreamDictForBuf(logo.RGB)
	if err != nil {
		return nil, err
	}
	sd.InsertName("Type", "XObject")
	sd.InsertName("Subtype", "Image")
	sd.InsertInt("Width", logo.Width)
	sd.InsertInt("Height", logo.Height)
	sd.InsertName("ColorSpace", "DeviceRGB")
	sd.InsertInt("BitsPerComponent", 8)
	if err := sd.Encode(); err != nil {
		return nil, err
	}
	return xRefTable.IndRefForNewObject(*sd)
}

func stampPage(xRefTable *model.XRefTable, pageNr int, logoRef *types.IndirectRef, logoName string, logo *FlatLogo, s Settings) error {
	pageRef, err := xRefTable.PageDictIndRef(pageNr)
	if err != nil {
		return fmt.Errorf("%s: %w", messages.PageObjectReadFailed(pageNr), err)
	}

	pageW, pageH, err := resolvePageSize(xRefTable, *pageRef, pageNr)
	if err != nil {
		return err
	}
	if pageW <= 0 || pageH <= 0 {
		return ErrInvalidPageSize
	}

	x, y, drawW, drawH := PlacePage(pageW, pageH, logo.Width, logo.Height, s)

	if err := insertLogo(xRefTable, *pageRef, logoRef, logoName, x, y, drawW, drawH); err != nil {
		return fmt.Errorf("%s: %w", messages.PageInsertFailed(pageNr), err)
	}
	return nil
}

// resolvePageSize walks the page dictionary and its Parent chain until a
// MediaBox entry is found, honoring page-tree attribute inheritance.
func resolvePageSize(xRefTable *model.XRefTable, pageRef types.IndirectRef, pageNr int) (float64, float64, error) {
	current := pageRef
	for hop := 0; hop < parentChainLimit; hop++ {
		dict, err := objectDict(xRefTable, current)
		if err != nil {
			return 0, 0, fmt.Errorf("%s: %w", messages.PageObjectReadFailed(pageNr), err)
		}

		if obj, found := dict.Find("MediaBox"); found {
			w, h, err := parseMediaBox(xRefTable, obj)
			if err != nil {
				return 0, 0, fmt.Errorf("%s: %w", messages.MediaBoxParseFailed(pageNr), err)
			}
			return w, h, nil
		}

		parent, found := dict.Find("Parent")
		if !found {
			break
		}
		parentRef, ok := parent.(types.IndirectRef)
		if !ok {
			break
		}
		current = parentRef
	}
	return 0, 0, errors.New(messages.MediaBoxNotFound(pageNr))
}

// objectDict resolves an indirect reference to its dictionary, accepting
// both plain dictionaries and stream dictionaries.
func objectDict(xRefTable *model.XRefTable, ref types.IndirectRef) (types.Dict, error) {
	obj, err := xRefTable.Dereference(ref)
	if err != nil {
		return nil, fmt.Errorf("%s: %w",
			messages.ObjectLookupFailed(ref.ObjectNumber.Value(), ref.GenerationNumber.Value()), err)
	}
	switch o := obj.(type) {
	case types.Dict:
		return o, nil
	case types.StreamDict:
		return o.Dict, nil
	default:
		return nil, errors.New(messages.PageObjectNotDict())
	}
}

// parseMediaBox reads a MediaBox value, direct or behind one indirect
// reference, and returns the box's width and height.
func parseMediaBox(xRefTable *model.XRefTable, obj types.Object) (float64, float64, error) {
	var arr types.Array
	switch o := obj.(type) {
	case types.Array:
		arr = o
	case types.IndirectRef:
		resolved, err := xRefTable.Dereference(o)
		if err != nil {
			return 0, 0, fmt.Errorf("%s: %w",
				messages.MediaBoxRefLookupFailed(o.ObjectNumber.Value(), o.GenerationNumber.Value()), err)
		}
		a, ok := resolved.(types.Array)
		if !ok {
			return 0, 0, errors.New(messages.MediaBoxRefNotArray())
		}
		arr = a
	default:
		return 0, 0, errors.New(messages.MediaBoxNotArray())
	}

	if len(arr) != 4 {
		return 0, 0, errors.New(messages.MediaBoxWrongLength())
	}

	llx, err := numberValue(arr[0])
	if err != nil {
		return 0, 0, err
	}
	lly, err := numberValue(arr[1])
	if err != nil {
		return 0, 0, err
	}
	urx, err := numberValue(arr[2])
	if err != nil {
		return 0, 0, err
	}
	ury, err := numberValue(arr[3])
	if err != nil {
		return 0, 0, err
	}

	width := urx - llx
	height := ury - lly
	if width <= 0 || height <= 0 {
		return 0, 0, errors.New(messages.MediaBoxDegenerate())
	}
	return width, height, nil
}

func numberValue(obj types.Object) (float64, error) {
	switch v := obj.(type) {
	case types.Integer:
		return float64(v.Value()), nil
	case types.Float:
		return v.Value(), nil
	default:
		return 0, errors.New(messages.MediaBoxNotNumeric())
	}
}

func insertLogo(xRefTable *model.XRefTable, pageRef types.IndirectRef, logoRef *types.IndirectRef, logoName string, x, y, w, h float64) error {
	pageDict, err := xRefTable.DereferenceDict(pageRef)
	if err != nil {
		return err
	}
	if err := addLogoResource(xRefTable, pageDict, logoRef, logoName); err != nil {
		return err
	}
	return appendStampContent(xRefTable, pageDict, logoName, x, y, w, h)
}

// addLogoResource attaches the logo XObject to the page's resource
// dictionary. A page relying on inherited resources gets its own copy
// first so sibling pages are left untouched.
func addLogoResource(xRefTable *model.XRefTable, pageDict types.Dict, logoRef *types.IndirectRef, logoName string) error {
	var resources types.Dict
	if obj, found := pageDict.Find("Resources"); found {
		d, err := xRefTable.DereferenceDict(obj)
		if err != nil {
			return err
		}
		resources = d
	} else {
		resources = types.NewDict()
		if inherited := inheritedResources(xRefTable, pageDict); inherited != nil {
			for k, v := range inherited {
				resources[k] = v
			}
		}
		pageDict["Resources"] = resources
	}

	var xObjects types.Dict
	if obj, found := resources.Find("XObject"); found {
		d, err := xRefTable.DereferenceDict(obj)
		if err != nil {
			return err
		}
		xObjects = d
	} else {
		xObjects = types.NewDict()
		resources["XObject"] = xObjects
	}

	xObjects[logoName] = *logoRef
	return nil
}

// inheritedResources finds the nearest Resources entry up the Parent
// chain, best-effort.
func inheritedResources(xRefTable *model.XRefTable, pageDict types.Dict) types.Dict {
	dict := pageDict
	for hop := 0; hop < parentChainLimit; hop++ {
		parent, found := dict.Find("Parent")
		if !found {
			return nil
		}
		parentRef, ok := parent.(types.IndirectRef)
		if !ok {
			return nil
		}
		d, err := objectDict(xRefTable, parentRef)
		if err != nil {
			return nil
		}
		if obj, found := d.Find("Resources"); found {
			res, err := xRefTable.DereferenceDict(obj)
			if err != nil {
				return nil
			}
			return res
		}
		dict = d
	}
	return nil
}

// appendStampContent brackets the page's existing content in a saved
// graphics state and draws the logo afterwards in pristine page
// coordinates, so leftover transforms in the original content cannot
// skew the stamp.
func appendStampContent(xRefTable *model.XRefTable, pageDict types.Dict, logoName string, x, y, w, h float64) error {
	var ops bytes.Buffer
	fmt.Fprintf(&ops, "Q\nq\n%.2f 0 0 %.2f %.2f %.2f cm\n/%s Do\nQ\n", w, h, x, y, logoName)

	pushRef, err := newContentStream(xRefTable, []byte("q\n"))
	if err != nil {
		return err
	}
	stampRef, err := newContentStream(xRefTable, ops.Bytes())
	if err != nil {
		return err
	}

	contents := types.Array{*pushRef}
	if obj, found := pageDict.Find("Contents"); found {
		switch o := obj.(type) {
		case types.IndirectRef:
			// May point at a single stream or at an array of streams.
			resolved, err := xRefTable.Dereference(o)
			if err != nil {
				return err
			}
			if arr, ok := resolved.(types.Array); ok {
				contents = append(contents, arr...)
			} else {
				contents = append(contents, o)
			}
		case types.Array:
			contents = append(contents, o...)
		}
	}
	contents = append(contents, *stampRef)
	pageDict["Contents"] = contents
	return nil
}

func newContentStream(xRefTable *model.XRefTable, ops []byte) (*types.IndirectRef, error) {
	sd, err := xRefTable.NewStreamDictForBuf(ops)
	if err != nil {
		return nil, err
	}
	if err := sd.Encode(); err != nil {
		return nil, err
	}
	return xRefTable.IndRefForNewObject(*sd)
}
