package idl

import (
	"fmt"

	"github.com/google/uuid"
)

// SevenZipIID builds an identifier in the 7-Zip interface namespace,
// {23170F69-40C1-278A-0000-00xx00yy0000}.
func SevenZipIID(group, id byte) uuid.UUID {
	return uuid.MustParse(fmt.Sprintf("23170F69-40C1-278A-0000-00%02X00%02X0000", group, id))
}

var IUnknown = NewInterface("IUnknown",
	uuid.MustParse("00000000-0000-0000-C000-000000000046"),
	nil,
	NewMethod("QueryInterface", Status, "const GUID * iid", "void ** out_object"),
	NewMethod("AddRef", Uint32),
	NewMethod("Release", Uint32),
)

var ISequentialInStream = NewInterface("ISequentialInStream", SevenZipIID(0x03, 0x01), IUnknown,
	NewMethod("Read", Status, "void * data", "uint32_t size", "uint32_t * processed_size"),
)

var IInStream = NewInterface("IInStream", SevenZipIID(0x03, 0x03), ISequentialInStream,
	NewMethod("Seek", Status, "int64_t offset", "uint32_t seek_origin", "uint64_t * new_position"),
)

var ISequentialOutStream = NewInterface("ISequentialOutStream", SevenZipIID(0x03, 0x02), IUnknown,
	NewMethod("Write", Status, "const void * data", "uint32_t size", "uint32_t * processed_size"),
)

var IOutStream = NewInterface("IOutStream", SevenZipIID(0x03, 0x04), ISequentialOutStream,
	NewMethod("Seek", Status, "int64_t offset", "uint32_t seek_origin", "uint64_t * new_position"),
	NewMethod("SetSize", Status, "uint64_t new_size"),
)

var IProgress = NewInterface("IProgress", SevenZipIID(0x00, 0x05), IUnknown,
	NewMethod("SetTotal", Status, "uint64_t total"),
	NewMethod("SetCompleted", Status, "const uint64_t * complete_value"),
)

var IArchiveExtractCallback = NewInterface("IArchiveExtractCallback", SevenZipIID(0x06, 0x20), IProgress,
	NewMethod("GetStream", Status, "uint32_t index", "ISequentialOutStream ** out_stream", "int32_t ask_extract_mode"),
	NewMethod("PrepareOperation", Status, "int32_t ask_extract_mode"),
	NewMethod("SetOperationResult", Status, "int32_t op_result"),
)

var IArchiveOpenCallback = NewInterface("IArchiveOpenCallback", SevenZipIID(0x06, 0x10), IUnknown,
	NewMethod("SetTotal", Status, "const uint64_t * files", "const uint64_t * bytes"),
	NewMethod("SetCompleted", Status, "const uint64_t * files", "const uint64_t * bytes"),
)

var IArchiveOpenSetSubArchiveName = NewInterface("IArchiveOpenSetSubArchiveName", SevenZipIID(0x06, 0x50), IUnknown,
	NewMethod("SetSubArchiveName", Status, "const wchar_t * name"),
)

var IArchiveOpenVolumeCallback = NewInterface("IArchiveOpenVolumeCallback", SevenZipIID(0x06, 0x30), IUnknown,
	NewMethod("GetProperty", Status, "PROPID prop_id", "PROPVARIANT * value"),
	NewMethod("GetStream", Status, "const wchar_t * name", "IInStream ** in_stream"),
)

var ICompressCodecsInfo = NewInterface("ICompressCodecsInfo", SevenZipIID(0x04, 0x60), IUnknown,
	NewMethod("GetNumMethods", Status, "uint32_t * num_methods"),
	NewMethod("GetProperty", Status, "uint32_t index", "PROPID prop_id", "PROPVARIANT * value"),
	NewMethod("CreateDecoder", Status, "uint32_t index", "const GUID * iid", "void ** coder"),
	NewMethod("CreateEncoder", Status, "uint32_t index", "const GUID * iid", "void ** coder"),
)

var ISetCompressCodecsInfo = NewInterface("ISetCompressCodecsInfo", SevenZipIID(0x04, 0x61), IUnknown,
	NewMethod("SetCompressCodecsInfo", Status, "ICompressCodecsInfo * compress_codecs_info"),
)

var ICompressProgressInfo = NewInterface("ICompressProgressInfo", SevenZipIID(0x04, 0x04), IUnknown,
	NewMethod("SetRatioInfo", Status, "const uint64_t * in_size", "const uint64_t * out_size"),
)

var ICryptoGetTextPassword = NewInterface("ICryptoGetTextPassword", SevenZipIID(0x05, 0x10), IUnknown,
	NewMethod("CryptoGetTextPassword", Status, "wchar_t ** password"),
)

var ICryptoGetTextPassword2 = NewInterface("ICryptoGetTextPassword2", SevenZipIID(0x05, 0x11), IUnknown,
	NewMethod("CryptoGetTextPassword2", Status, "int32_t * password_is_defined", "wchar_t ** password"),
)

var IInArchive = NewInterface("IInArchive", SevenZipIID(0x06, 0x60), IUnknown,
	NewMethod("Open", Status, "IInStream * stream", "const uint64_t * max_check_start_position", "IArchiveOpenCallback * open_callback"),
	NewMethod("Close", Status),
	NewMethod("GetNumberOfItems", Status, "uint32_t * num_items"),
	NewMethod("GetProperty", Status, "uint32_t index", "PROPID prop_id", "PROPVARIANT * value"),
	NewMethod("Extract", Status, "const uint32_t * indices", "uint32_t num_items", "int32_t test_mode", "IArchiveExtractCallback * extract_callback"),
	NewMethod("GetArchiveProperty", Status, "PROPID prop_id", "PROPVARIANT * value"),
	NewMethod("GetNumberOfProperties", Status, "uint32_t * num_props"),
	NewMethod("GetPropertyInfo", Status, "uint32_t index", "wchar_t ** name", "PROPID * prop_id", "VARTYPE * var_type"),
	NewMethod("GetNumberOfArchiveProperties", Status, "uint32_t * num_props"),
	NewMethod("GetArchivePropertyInfo", Status, "uint32_t index", "wchar_t ** name", "PROPID * prop_id", "VARTYPE * var_type"),
)

// Default holds every interface in published order. Appending is safe;
// reordering changes the binary layout of the generated tables.
var Default = MustRegistry(
	IUnknown,
	ISequentialInStream,
	IInStream,
	ISequentialOutStream,
	IOutStream,
	IProgress,
	IArchiveExtractCallback,
	IArchiveOpenCallback,
	IArchiveOpenSetSubArchiveName,
	IArchiveOpenVolumeCallback,
	ICompressCodecsInfo,
	ISetCompressCodecsInfo,
	ICompressProgressInfo,
	ICryptoGetTextPassword,
	ICryptoGetTextPassword2,
	IInArchive,
)
