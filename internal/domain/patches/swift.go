package patches

import (
	"pushup.dev/pkg/pushup/internal/domain/splice"
	m "pushup.dev/pkg/pushup/internal/model"
)

const swiftFetchBundleURL = `private var cachedBundleUrl: URL?

override init() {
  super.init()
  fetchBundleUrl()
}

private func fetchBundleUrl() {
  guard let infoDictionary = Bundle.main.infoDictionary,
        let pushupHost = infoDictionary["` + m.HostResourceName + `"] as? String,
        let bundleId = Bundle.main.bundleIdentifier else {
    print("Failed to load ` + m.HostResourceName + ` or Bundle ID from Info.plist")
    return
  }

  guard let url = URL(string: "\(pushupHost)/v1/bundle") else {
    print("Invalid URL: \(pushupHost)/v1/bundle")
    return
  }

  print("Fetching bundle from: \(url)")
  print("Bundle ID: \(bundleId)")

  let semaphore = DispatchSemaphore(value: 0)

  DispatchQueue.global(qos: .userInitiated).async {
    var request = URLRequest(url: url)
    request.httpMethod = "GET"
    request.setValue(bundleId, forHTTPHeaderField: "X-Bundle-ID")
    request.timeoutInterval = 3

    let task = URLSession.shared.dataTask(with: request) { data, response, error in
      defer { semaphore.signal() }

      if let error = error {
        print("Network error: \(error.localizedDescription)")
        return
      }

      guard let data = data else {
        print("No data received")
        return
      }

      do {
        if let jsonObject = try JSONSerialization.jsonObject(with: data) as? [String: Any],
           let bundleUrlString = jsonObject["bundleUrl"] as? String,
           let bundleUrl = URL(string: bundleUrlString) {
          self.cachedBundleUrl = bundleUrl
          print("Fetched bundle URL: \(bundleUrl)")
        } else {
          print("Invalid JSON response")
        }
      } catch {
        print("JSON parsing error: \(error.localizedDescription)")
      }
    }

    task.resume()
  }

  _ = semaphore.wait(timeout: .now() + 3)
}
`

const swiftBundleURLOverride = `override func bundleURL() -> URL? {
  if let cached = cachedBundleUrl {
    print("Success loaded bundle from server")
    return cached
  }
  print("Use default built .bundle")
#if DEBUG
  return RCTBundleURLProvider.sharedSettings().jsBundleURL(forBundleRoot: ".expo/.virtual-metro-entry")
#else
  return Bundle.main.url(forResource: "main", withExtension: "jsbundle")
#endif
}`

const swiftSourceURLOverride = `override func sourceURL(for bridge: RCTBridge) -> URL? {
  return bundleURL()
}`

// swiftDeclarationStart matches the attributes and access modifier leading a
// declaration, so a fragment placed before it does not take them over.
const swiftDeclarationStart = `(?m)^[ \t]*(?:@\w+(?:\([^)\n]*\))?\s+)*(?:(?:public|open|internal|fileprivate|private)[ \t]+)?`

// swift patches ios/<App>/AppDelegate.swift.
var swift = splice.Sequence{
	Dialect:    m.DialectSwift,
	IndentUnit: "  ",
	Steps: []splice.Step{
		{
			Name:      "cached-bundle-url",
			Signature: splice.Literal("private var cachedBundleUrl: URL?"),
			Fragment:  swiftFetchBundleURL,
			Mandatory: true,
			Anchors: []splice.Anchor{{
				Name:      "react-native-delegate-class",
				Locator:   splice.Regex(`class ReactNativeDelegate\s*:\s*ExpoReactNativeFactoryDelegate\s*\{`),
				Placement: splice.After,
				Nested:    true,
			}},
		},
		{
			Name:      "bundle-url-override",
			Signature: splice.Literal(`print("Success loaded bundle from server")`),
			Fragment:  swiftBundleURLOverride,
			Anchors: []splice.Anchor{
				{
					Name:      "existing-bundle-url",
					Locator:   splice.Block(`override func bundleURL\(\)\s*->\s*URL\?`),
					Placement: splice.Replace,
				},
				{
					Name:      "source-url",
					Locator:   splice.Regex(swiftDeclarationStart + `override func sourceURL`),
					Placement: splice.Before,
					Separator: "\n\n",
				},
			},
		},
		{
			Name:      "source-url-override",
			Signature: splice.Literal("return bundleURL()"),
			Fragment:  swiftSourceURLOverride,
			Anchors: []splice.Anchor{{
				Name:      "existing-source-url",
				Locator:   splice.Block(`override func sourceURL\(for bridge: RCTBridge\)\s*->\s*URL\?`),
				Placement: splice.Replace,
			}},
		},
	},
}
