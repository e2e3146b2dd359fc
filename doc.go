/*
Package main (doc.go) :
This is a CLI tool to download a file or a whole folder tree from Google
Drive, given the URL of a resource that has been shared with a service
account.

Unlike tools built on an API key or an OAuth2 browser flow, this one
authenticates as a GCP service account: share the target file or folder
with the service-account email, point the tool at the credentials JSON,
and pass the sharing URL. Folders are mirrored recursively, native Google
documents (Docs, Sheets, Slides, Drawings) are exported to a downloadable
format, and everything else is streamed byte-for-byte.

A failed item does not abort the run: the remaining siblings are still
downloaded, every failure is listed at the end, and the exit status is
non-zero if anything failed.

---------------------------------------------------------------

# Usage

$ download-google-drive-files [options] "GOOGLE DRIVE RESOURCE URL"

The credentials file is taken from --credentials, then from the
GOOGLE_DRIVE_CREDENTIALS environment variable, then from the first *.json
found under ./credential.

Download a shared folder tree into ./out:

$ download-google-drive-files -d ./out "https://drive.google.com/drive/folders/###"

Inspect a share without downloading it:

$ download-google-drive-files -i "https://drive.google.com/drive/folders/###"

---------------------------------------------------------------
*/
package main
