package domain

import (
	"bytes"
	"encoding/xml"
	"text/template"
)

var descriptorTemplate = template.Must(template.New("pom").Parse(`<?xml version="1.0" encoding="UTF-8"?>
<project xmlns="http://maven.apache.org/POM/4.0.0" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance"
    xsi:schemaLocation="http://maven.apache.org/POM/4.0.0 https://maven.apache.org/xsd/maven-4.0.0.xsd">
  <modelVersion>4.0.0</modelVersion>
  <groupId>{{.GroupID}}</groupId>
  <artifactId>{{.ArtifactID}}</artifactId>
  <version>{{.Version}}</version>
  <description>POM was generated by gavel</description>
</project>`))

// RenderDescriptor renders the minimal package descriptor for a published version.
// Values are XML-escaped; the output ends with the closing project tag.
func RenderDescriptor(groupID, artifactID, version string) ([]byte, error) {
	var buf bytes.Buffer
	err := descriptorTemplate.Execute(&buf, struct {
		GroupID, ArtifactID, Version string
	}{
		GroupID:    escapeXML(groupID),
		ArtifactID: escapeXML(artifactID),
		Version:    escapeXML(version),
	})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
