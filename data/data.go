package data

import (
    "embed"
    "io/fs"
    "path"
    "sort"
    "strings"
)

//go:embed data/*.ptnoise
var Data embed.FS

const Extension = ".ptnoise"

// List returns the names of the embedded instruments without the extension
func List() ([]string, error) {
    entries, err := fs.ReadDir(Data, "data")
    if err != nil {
        return nil, err
    }

    var names []string
    for _, entry := range entries {
        if entry.IsDir() || path.Ext(entry.Name()) != Extension {
            continue
        }
        names = append(names, strings.TrimSuffix(entry.Name(), Extension))
    }

    sort.Strings(names)
    return names, nil
}

// Open finds an embedded instrument by name, the extension is optional
func Open(name string) (fs.File, error) {
    if !strings.HasSuffix(name, Extension) {
        name += Extension
    }
    return Data.Open(path.Join("data", name))
}
